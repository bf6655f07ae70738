package deployer

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// ParseConstructorArgs converts command line arguments into the Go values abi packing expects.
func ParseConstructorArgs(constructor abi.Method, args []string) ([]any, error) {
	if len(args) != len(constructor.Inputs) {
		return nil, fmt.Errorf("%w: constructor expects %d, got %d", ErrArgumentCount, len(constructor.Inputs), len(args))
	}

	params := make([]any, 0, len(args))
	for i, input := range constructor.Inputs {
		value, err := parseArg(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, fmt.Errorf("%w %s (%s): %w", ErrInvalidArgument, name, input.Type, err)
		}
		params = append(params, value)
	}
	return params, nil
}

func parseArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !ethcommon.IsHexAddress(s) {
			return nil, fmt.Errorf("%q is not an address", s)
		}
		return ethcommon.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		return parseFixedBytes(t, s)
	case abi.IntTy, abi.UintTy:
		return parseInteger(t, s)
	case abi.SliceTy, abi.ArrayTy:
		return parseList(t, s)
	default:
		return nil, fmt.Errorf("type %s is not supported", t)
	}
}

func parseFixedBytes(t abi.Type, s string) (any, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(data) != t.Size {
		return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(data))
	}
	value := reflect.New(t.GetType()).Elem()
	reflect.Copy(value, reflect.ValueOf(data))
	return value.Interface(), nil
}

func parseInteger(t abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("%q is not a number", s)
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s does not fit into uint%d", n, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%s does not fit into int%d", n, t.Size)
		}
	}

	goType := t.GetType()
	if goType == bigIntType {
		return n, nil
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

// parseList accepts a JSON list; elements may be JSON strings or bare literals.
func parseList(t abi.Type, s string) (any, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("expected a JSON list: %w", err)
	}
	if t.T == abi.ArrayTy && len(items) != t.Size {
		return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
	}

	var list reflect.Value
	if t.T == abi.ArrayTy {
		list = reflect.New(t.GetType()).Elem()
	} else {
		list = reflect.MakeSlice(t.GetType(), len(items), len(items))
	}

	for i, item := range items {
		text := string(item)
		var str string
		if err := json.Unmarshal(item, &str); err == nil {
			text = str
		}
		value, err := parseArg(*t.Elem, text)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(value))
	}
	return list.Interface(), nil
}
