package interpreter

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/memory"
)

// Execute applies a decoded instruction to the machine state. The program
// counter is expected to already point to the following instruction.
// On error the machine state is left unchanged.
func (c *Interpreter) Execute(ins instruction.Instruction) (Result, error) {
	res, err := c.execute(ins)
	if err != nil {
		return Result{}, err
	}

	c.awaitingKey = res.AwaitingKey
	if c.trace != nil {
		c.trace(Event{
			Address:     c.lastAddress,
			Instruction: ins,
			Result:      res,
		})
	}
	return res, nil
}

//nolint:cyclop,funlen // one case per instruction type
func (c *Interpreter) execute(ins instruction.Instruction) (Result, error) {
	switch ins := ins.(type) {
	case instruction.Cls:
		c.screen.Clear()
		return Result{Redraw: true}, nil

	case instruction.Ret:
		return Result{}, c.ret()

	case instruction.Jmp:
		c.pc = ins.Address

	case instruction.Call:
		return Result{}, c.call(ins.Address)

	case instruction.SeByte:
		c.skipIf(c.v[ins.X] == ins.Value)

	case instruction.SneByte:
		c.skipIf(c.v[ins.X] != ins.Value)

	case instruction.SeReg:
		c.skipIf(c.v[ins.X] == c.v[ins.Y])

	case instruction.SneReg:
		c.skipIf(c.v[ins.X] != c.v[ins.Y])

	case instruction.LdVx:
		c.v[ins.X] = ins.Value

	case instruction.AddVx:
		c.v[ins.X] += ins.Value

	case instruction.Mov:
		c.v[ins.X] = c.v[ins.Y]

	case instruction.Or:
		c.v[ins.X] |= c.v[ins.Y]

	case instruction.And:
		c.v[ins.X] &= c.v[ins.Y]

	case instruction.Xor:
		c.v[ins.X] ^= c.v[ins.Y]

	case instruction.AddReg:
		sum := uint16(c.v[ins.X]) + uint16(c.v[ins.Y])
		c.v[ins.X] = uint8(sum)
		c.setFlag(sum > 0xFF)

	case instruction.Sub:
		notBorrow := c.v[ins.X] >= c.v[ins.Y]
		c.v[ins.X] -= c.v[ins.Y]
		c.setFlag(notBorrow)

	case instruction.Subn:
		notBorrow := c.v[ins.Y] >= c.v[ins.X]
		c.v[ins.X] = c.v[ins.Y] - c.v[ins.X]
		c.setFlag(notBorrow)

	case instruction.Shr:
		src := c.shiftSource(ins.X, ins.Y)
		c.v[ins.X] = src >> 1
		c.setFlag(src&0x01 != 0)

	case instruction.Shl:
		src := c.shiftSource(ins.X, ins.Y)
		c.v[ins.X] = src << 1
		c.setFlag(src&0x80 != 0)

	case instruction.LdI:
		c.i = ins.Address

	case instruction.JmpV0:
		c.pc = ins.Address + uint16(c.v[0])

	case instruction.Rnd:
		c.v[ins.X] = c.random() & ins.Mask

	case instruction.Drw:
		return c.draw(ins)

	case instruction.Skp:
		c.skipIf(c.keyPressed && c.key == c.v[ins.X])

	case instruction.Sknp:
		c.skipIf(!c.keyPressed || c.key != c.v[ins.X])

	case instruction.LdVxDT:
		c.v[ins.X] = c.dt

	case instruction.LdVxKey:
		if !c.keyPressed {
			return Result{AwaitingKey: true}, nil
		}
		c.v[ins.X] = c.key

	case instruction.LdDTVx:
		c.dt = c.v[ins.X]

	case instruction.LdSTVx:
		c.st = c.v[ins.X]

	case instruction.AddI:
		c.i += uint16(c.v[ins.X])

	case instruction.LdFont:
		c.i = memory.FontGlyphAddress(c.v[ins.X])

	case instruction.LdBCD:
		value := c.v[ins.X]
		digits := []byte{value / 100, value / 10 % 10, value % 10}
		if err := c.memory.Write(c.i, digits); err != nil {
			return Result{}, fmt.Errorf("storing bcd of V%X: %w", ins.X, err)
		}

	case instruction.StoreRegs:
		return Result{}, c.storeRegisters(ins.X)

	case instruction.LoadRegs:
		return Result{}, c.loadRegisters(ins.X)

	case instruction.Unrecognized:
		return Result{}, &UnrecognizedError{
			Address: c.lastAddress,
			Word:    ins.Word,
		}

	default:
		return Result{}, fmt.Errorf("unsupported instruction type %T", ins)
	}

	return Result{}, nil
}

func (c *Interpreter) call(address uint16) error {
	if c.sp >= StackDepth {
		return &StackFaultError{
			Address:  c.lastAddress,
			Overflow: true,
		}
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = address
	return nil
}

func (c *Interpreter) ret() error {
	if c.sp == 0 {
		return &StackFaultError{
			Address: c.lastAddress,
		}
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

func (c *Interpreter) draw(ins instruction.Drw) (Result, error) {
	sprite, err := c.memory.Read(c.i, int(ins.N))
	if err != nil {
		return Result{}, fmt.Errorf("reading sprite: %w", err)
	}

	collision := c.screen.Draw(c.v[ins.X], c.v[ins.Y], sprite, c.quirks.Edge)
	c.setFlag(collision)
	return Result{Redraw: true}, nil
}

func (c *Interpreter) storeRegisters(x uint8) error {
	count := uint16(x) + 1
	if err := c.memory.Write(c.i, c.v[:count]); err != nil {
		return fmt.Errorf("storing registers V0-V%X: %w", x, err)
	}
	if c.quirks.IncrementIndex {
		c.i += count
	}
	return nil
}

func (c *Interpreter) loadRegisters(x uint8) error {
	count := uint16(x) + 1
	data, err := c.memory.Read(c.i, int(count))
	if err != nil {
		return fmt.Errorf("loading registers V0-V%X: %w", x, err)
	}
	copy(c.v[:], data)
	if c.quirks.IncrementIndex {
		c.i += count
	}
	return nil
}

func (c *Interpreter) shiftSource(x, y uint8) uint8 {
	if c.quirks.ShiftSource == ShiftVy {
		return c.v[y]
	}
	return c.v[x]
}

func (c *Interpreter) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

// setFlag writes VF, it is always the last register written by an instruction.
func (c *Interpreter) setFlag(set bool) {
	if set {
		c.v[flag] = 1
	} else {
		c.v[flag] = 0
	}
}
