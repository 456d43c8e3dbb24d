package internal

import (
	"companion-lab/errors"
	"fmt"
	"time"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=8080"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	TokenDuration   time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	LimitComments   *int          `env:"LIMIT_COMMENTS"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxImageBytes   int64         `env:"MAX_IMAGE_BYTES,default=5242880"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CHARACTER_REPLACEMENT: %w, got %q", errors.ErrInvalidCharacter, str)
	}
	return r[0], nil
}
