package saes

import "strconv"

// Direction tells which way a Trace ran.
type Direction string

const (
	DirEncrypt Direction = "encrypt"
	DirDecrypt Direction = "decrypt"
)

// Step is the state after one transform.
type Step struct {
	Round int    `json:"round"`
	Name  string `json:"name"`
	State State  `json:"state"`
}

// Word returns the step's state as a 16-bit block.
func (s Step) Word() uint16 {
	return s.State.Word()
}

// Trace records every intermediate state of one block operation.
type Trace struct {
	Direction Direction `json:"direction"`
	Input     uint16    `json:"input"`
	Output    uint16    `json:"output"`
	Steps     []Step    `json:"steps"`
}

type stage struct {
	round int
	name  string
	apply func(s State, rk *RoundKeys) State
}

func subStage(round int) stage {
	return stage{round, "substitute", func(s State, _ *RoundKeys) State { return SubstituteNibbles(sub, s) }}
}

func invSubStage(round int) stage {
	return stage{round, "inverse substitute", func(s State, _ *RoundKeys) State { return SubstituteNibbles(subInverse, s) }}
}

func shiftStage(round int) stage {
	return stage{round, "shift row", func(s State, _ *RoundKeys) State { return ShiftRow(s) }}
}

func keyStage(round, key int) stage {
	return stage{round, "add round key " + strconv.Itoa(key), func(s State, rk *RoundKeys) State {
		return AddRoundKey(rk[key].State(), s)
	}}
}

var encryptStages = []stage{
	keyStage(0, 0),
	subStage(1),
	shiftStage(1),
	{1, "mix columns", func(s State, _ *RoundKeys) State { return MixColumns(s) }},
	keyStage(1, 1),
	subStage(2),
	shiftStage(2),
	keyStage(2, 2),
}

var decryptStages = []stage{
	keyStage(0, 2),
	shiftStage(1),
	invSubStage(1),
	keyStage(1, 1),
	{1, "inverse mix columns", func(s State, _ *RoundKeys) State { return InverseMixColumns(s) }},
	shiftStage(2),
	invSubStage(2),
	keyStage(2, 0),
}

// EncryptTrace enciphers plaintext like Encrypt and records each step.
func EncryptTrace(plaintext uint16, rk RoundKeys) Trace {
	return run(DirEncrypt, encryptStages, plaintext, &rk)
}

// DecryptTrace deciphers ciphertext like Decrypt and records each step.
func DecryptTrace(ciphertext uint16, rk RoundKeys) Trace {
	return run(DirDecrypt, decryptStages, ciphertext, &rk)
}

func run(dir Direction, stages []stage, in uint16, rk *RoundKeys) Trace {
	s := StateOf(in)
	tr := Trace{
		Direction: dir,
		Input:     in,
		Steps:     make([]Step, 0, len(stages)+1),
	}
	tr.Steps = append(tr.Steps, Step{Round: 0, Name: "input", State: s})
	for _, st := range stages {
		s = st.apply(s, rk)
		tr.Steps = append(tr.Steps, Step{Round: st.round, Name: st.name, State: s})
	}
	tr.Output = s.Word()
	return tr
}
