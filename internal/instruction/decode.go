package instruction

// Decode returns the instruction encoded by word. It never fails, words that
// are not part of the instruction set return Unrecognized.
func Decode(word uint16) Instruction {
	x := registerX(word)
	y := registerY(word)

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return Cls{}
		case 0x00EE:
			return Ret{}
		}

	case 0x1000:
		return Jmp{Address: address(word)}

	case 0x2000:
		return Call{Address: address(word)}

	case 0x3000:
		return SeByte{X: x, Value: lowByte(word)}

	case 0x4000:
		return SneByte{X: x, Value: lowByte(word)}

	case 0x5000:
		if nibble(word) == 0 {
			return SeReg{X: x, Y: y}
		}

	case 0x6000:
		return LdVx{X: x, Value: lowByte(word)}

	case 0x7000:
		return AddVx{X: x, Value: lowByte(word)}

	case 0x8000:
		if ins, ok := decodeALU(word, x, y); ok {
			return ins
		}

	case 0x9000:
		if nibble(word) == 0 {
			return SneReg{X: x, Y: y}
		}

	case 0xA000:
		return LdI{Address: address(word)}

	case 0xB000:
		return JmpV0{Address: address(word)}

	case 0xC000:
		return Rnd{X: x, Mask: lowByte(word)}

	case 0xD000:
		return Drw{X: x, Y: y, N: nibble(word)}

	case 0xE000:
		switch lowByte(word) {
		case 0x9E:
			return Skp{X: x}
		case 0xA1:
			return Sknp{X: x}
		}

	case 0xF000:
		if ins, ok := decodeMisc(word, x); ok {
			return ins
		}
	}

	return Unrecognized{Word: word}
}

// decodeALU decodes the register to register instructions 8xyN.
func decodeALU(word uint16, x, y uint8) (Instruction, bool) {
	switch nibble(word) {
	case 0x0:
		return Mov{X: x, Y: y}, true
	case 0x1:
		return Or{X: x, Y: y}, true
	case 0x2:
		return And{X: x, Y: y}, true
	case 0x3:
		return Xor{X: x, Y: y}, true
	case 0x4:
		return AddReg{X: x, Y: y}, true
	case 0x5:
		return Sub{X: x, Y: y}, true
	case 0x6:
		return Shr{X: x, Y: y}, true
	case 0x7:
		return Subn{X: x, Y: y}, true
	case 0xE:
		return Shl{X: x, Y: y}, true
	}
	return nil, false
}

// decodeMisc decodes the timer, key, index and memory instructions FxNN.
func decodeMisc(word uint16, x uint8) (Instruction, bool) {
	switch lowByte(word) {
	case 0x07:
		return LdVxDT{X: x}, true
	case 0x0A:
		return LdVxKey{X: x}, true
	case 0x15:
		return LdDTVx{X: x}, true
	case 0x18:
		return LdSTVx{X: x}, true
	case 0x1E:
		return AddI{X: x}, true
	case 0x29:
		return LdFont{X: x}, true
	case 0x33:
		return LdBCD{X: x}, true
	case 0x55:
		return StoreRegs{X: x}, true
	case 0x65:
		return LoadRegs{X: x}, true
	}
	return nil, false
}

func registerX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

func registerY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}

func address(word uint16) uint16 {
	return word & 0x0FFF
}

func lowByte(word uint16) uint8 {
	return uint8(word & 0x00FF)
}

func nibble(word uint16) uint8 {
	return uint8(word & 0x000F)
}
