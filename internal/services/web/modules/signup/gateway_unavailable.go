package signup

import (
	"context"

	apperrors "github.com/snapgram/web/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) CreateAccount(context.Context, NewAccount) (Outcome, error) {
	return Outcome{}, apperrors.EK(apperrors.KindUnavailable, MsgUnavailable, "account service is not configured")
}
