package service

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// CodeGenerator produces six-digit confirmation codes in [100000, 999999].
type CodeGenerator interface {
	Generate() (string, error)
}
