package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Usernames: letters, digits and @/./+/-/_
	UsernamePattern = `^[\w.@+\-]+$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
}

var registerOnce sync.Once

// RegisterGinValidators installs the custom rules and JSON field naming on gin's validator.
// Safe to call more than once.
func RegisterGinValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom rules on v and reports fields by their JSON names
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Username.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register username rule: %w", err)
	}

	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
