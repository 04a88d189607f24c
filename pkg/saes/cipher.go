package saes

// Encrypt enciphers one block under rk.
func Encrypt(plaintext uint16, rk RoundKeys) uint16 {
	s := StateOf(plaintext ^ rk[0].Word())

	s = SubstituteNibbles(sub, s)
	s = ShiftRow(s)
	s = MixColumns(s)
	s = AddRoundKey(rk[1].State(), s)

	// final round has no column mix
	s = SubstituteNibbles(sub, s)
	s = ShiftRow(s)
	s = AddRoundKey(rk[2].State(), s)

	return s.Word()
}

// Decrypt reverses Encrypt under the same round keys.
func Decrypt(ciphertext uint16, rk RoundKeys) uint16 {
	s := StateOf(ciphertext ^ rk[2].Word())

	s = ShiftRow(s)
	s = SubstituteNibbles(subInverse, s)
	s = AddRoundKey(rk[1].State(), s)
	s = InverseMixColumns(s)

	s = ShiftRow(s)
	s = SubstituteNibbles(subInverse, s)
	s = AddRoundKey(rk[0].State(), s)

	return s.Word()
}
