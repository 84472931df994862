package feeders

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// ErrEnvInvalidStructure indicates the provided structure is not a pointer
// to a struct.
var ErrEnvInvalidStructure = errors.New("env: structure must be a pointer to a struct")

// ErrEnvEmptyPrefix indicates the feeder was built with an empty prefix.
var ErrEnvEmptyPrefix = errors.New("env: prefix cannot be empty")

// PrefixedEnvFeeder reads environment variables named <PREFIX><FIELD>,
// where FIELD comes from the field's `env` tag (or the uppercased field
// name when untagged). It lets one process configure several role sections
// without variable-name clashes, e.g. EZSTD_FS_MAXREADBYTES.
type PrefixedEnvFeeder struct {
	Prefix string
}

// NewPrefixedEnvFeeder creates a PrefixedEnvFeeder with the given prefix.
func NewPrefixedEnvFeeder(prefix string) PrefixedEnvFeeder {
	return PrefixedEnvFeeder{Prefix: prefix}
}

// Feed reads environment variables and populates the provided structure.
func (f PrefixedEnvFeeder) Feed(structure interface{}) error {
	if f.Prefix == "" {
		return ErrEnvEmptyPrefix
	}
	rv := reflect.ValueOf(structure)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrEnvInvalidStructure
	}
	return f.fillStruct(rv.Elem())
}

// FeedKey feeds target from variables named <PREFIX><KEY>_<FIELD>.
func (f PrefixedEnvFeeder) FeedKey(key string, target interface{}) error {
	scoped := PrefixedEnvFeeder{Prefix: f.Prefix + strings.ToUpper(key) + "_"}
	return scoped.Feed(target)
}

func (f PrefixedEnvFeeder) fillStruct(rv reflect.Value) error {
	prefix := strings.ToUpper(f.Prefix)

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Type().Field(i)
		if !rv.Field(i).CanSet() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			if err := f.fillStruct(rv.Field(i)); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get("env")
		if name == "" {
			name = strings.ToUpper(field.Name)
		}
		raw, set := os.LookupEnv(prefix + strings.ToUpper(name))
		if !set || raw == "" {
			continue
		}

		value, err := cast.FromType(raw, field.Type)
		if err != nil {
			return fmt.Errorf("env: cannot cast %s: %w", prefix+name, err)
		}
		rv.Field(i).Set(reflect.ValueOf(value))
	}
	return nil
}
