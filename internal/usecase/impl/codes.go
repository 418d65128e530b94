package impl

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"

	"github.com/pkg/errors"
)

// sendCode mails a confirmation code. A relay failure is reported as a generic delivery error.
func sendCode(ctx context.Context, mailer service.EmailDispatcher, to, subject, code string) error {
	if err := mailer.Send(ctx, to, subject, codeMessagePrefix+code); err != nil {
		return errors.Wrap(domainerrors.ErrEmailDeliveryFailed, err.Error())
	}

	return nil
}

// codeFingerprint binds a reset token to the code it was issued for without embedding the code.
func codeFingerprint(code string) string {
	sum := sha256.Sum256([]byte(code))

	return hex.EncodeToString(sum[:])
}

func fingerprintsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// mapUserLookupError turns a missing user into notFound and wraps anything else.
func mapUserLookupError(err error, notFound error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return notFound
	}

	return errors.Wrap(err, "failed to find user")
}
