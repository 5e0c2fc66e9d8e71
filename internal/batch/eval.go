package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/fixedint/pkg/fixedint"
	"github.com/oisee/fixedint/pkg/result"
)

// Evaluate parses and executes a single batch line, reporting the
// outcome as a result.Record. It never returns an error itself — a
// malformed or failing expression is reported in the record's Err
// field so one bad line does not abort the rest of the batch.
func Evaluate(t Task) result.Record {
	rec := result.Record{Line: t.Line, Input: t.Expr}
	out, err := evaluate(t.Expr)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}
	rec.Output = out
	return rec
}

func evaluate(expr string) (string, error) {
	fields := strings.Fields(expr)
	if len(fields) < 3 {
		return "", fmt.Errorf("expected '<width> <u|i> <op> <args...>', got %q", expr)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", fmt.Errorf("invalid width %q: %w", fields[0], err)
	}
	signed, err := parseSignedness(fields[1])
	if err != nil {
		return "", err
	}
	op := strings.ToLower(fields[2])
	args := fields[3:]

	switch width {
	case 128:
		if signed {
			return evalI128(op, args)
		}
		return evalU128(op, args)
	case 256:
		if signed {
			return evalI256(op, args)
		}
		return evalU256(op, args)
	case 512:
		if signed {
			return evalI512(op, args)
		}
		return evalU512(op, args)
	default:
		return "", fmt.Errorf("unsupported width %d: must be 128, 256, or 512", width)
	}
}

func parseSignedness(s string) (bool, error) {
	switch s {
	case "u", "unsigned":
		return false, nil
	case "i", "signed":
		return true, nil
	default:
		return false, fmt.Errorf("signedness must be 'u' or 'i', got %q", s)
	}
}

func wantArgs(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", op, n, len(args))
	}
	return nil
}

func parseShift(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid shift count %q: %w", s, err)
	}
	return uint(v), nil
}

func evalU128(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.U128, error) { return new(fixedint.U128).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U128
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.U128
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.U128
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.U128
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U128
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func evalI128(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.I128, error) { return new(fixedint.I128).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I128
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.I128
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.I128
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.I128
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I128
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func evalU256(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.U256, error) { return new(fixedint.U256).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U256
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.U256
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.U256
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.U256
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U256
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func evalI256(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.I256, error) { return new(fixedint.I256).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I256
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.I256
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.I256
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.I256
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I256
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func evalU512(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.U512, error) { return new(fixedint.U512).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U512
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.U512
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.U512
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.U512
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.U512
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func evalI512(op string, args []string) (string, error) {
	parse := func(s string) (*fixedint.I512, error) { return new(fixedint.I512).Parse(s) }
	switch op {
	case "parse":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return x.String(), nil
	case "add", "sub", "mul", "and", "or", "xor", "div", "mod", "gcd", "lcm":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I512
		switch op {
		case "add":
			z.Add(x, y)
		case "sub":
			z.Sub(x, y)
		case "mul":
			z.Mul(x, y)
		case "and":
			z.And(x, y)
		case "or":
			z.Or(x, y)
		case "xor":
			z.Xor(x, y)
		case "gcd":
			z.Gcd(x, y)
		case "lcm":
			z.Lcm(x, y)
		case "div":
			var m fixedint.I512
			if _, _, err := z.DivMod(x, y, &m); err != nil {
				return "", err
			}
		case "mod":
			var q fixedint.I512
			if _, _, err := q.DivMod(x, y, &z); err != nil {
				return "", err
			}
		}
		return z.String(), nil
	case "neg", "not":
		if err := wantArgs(op, args, 1); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		var z fixedint.I512
		if op == "neg" {
			z.Neg(x)
		} else {
			z.Not(x)
		}
		return z.String(), nil
	case "lsh", "rsh":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return "", err
		}
		var z fixedint.I512
		if op == "lsh" {
			z.Lsh(x, n)
		} else {
			z.Rsh(x, n)
		}
		return z.String(), nil
	case "cmp":
		if err := wantArgs(op, args, 2); err != nil {
			return "", err
		}
		x, err := parse(args[0])
		if err != nil {
			return "", err
		}
		y, err := parse(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x.Cmp(y)), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}
