package common

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/mitchellh/mapstructure"
)

var ErrEmptyPrivateKey = errors.New("private key is empty, remove the option to leave it unset")

func decodePrivateKey(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(&ecdsa.PrivateKey{}) {
		s, _ := data.(string)
		s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
		if s == "" {
			return nil, ErrEmptyPrivateKey
		}
		key, err := crypto.HexToECDSA(s)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return key, nil
	}
	return data, nil
}

func decodeWei(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(&uint256.Int{}) {
		return data, nil
	}

	switch f.Kind() {
	case reflect.String:
		s, _ := data.(string)
		value, err := ParseWei(s)
		if err != nil || value != nil {
			return value, err
		}
		return new(uint256.Int), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := reflect.ValueOf(data).Int()
		if n < 0 {
			return nil, fmt.Errorf("%w: %d is negative", ErrInvalidWei, n)
		}
		return uint256.NewInt(uint64(n)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint256.NewInt(reflect.ValueOf(data).Uint()), nil
	default:
		return data, nil
	}
}

func UpdateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		decodePrivateKey,
		decodeWei,
	)
}
