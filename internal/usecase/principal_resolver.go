package usecase

import (
	"context"

	"turfbook/internal/domain/principal"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/pkg/jwt"
	"turfbook/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.Mark(errs.New("invalid or expired credentials"), errs.ErrUnauthorized)

// PrincipalResolver turns a credential from either the bearer header or the session
// cookie into the one principal shape the use cases accept.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (principal.Principal, error)
}

type principalResolverImpl struct {
	jwtService *jwt.Service
	reads      shared.CommandReads
}

func NewPrincipalResolver(jwtService *jwt.Service, uow shared.UnitOfWork) PrincipalResolver {
	return &principalResolverImpl{
		jwtService: jwtService,
		reads:      uow.CommandReads(),
	}
}

func (p *principalResolverImpl) Resolve(ctx context.Context, token string) (principal.Principal, error) {
	if token == "" {
		return principal.Principal{}, ErrInvalidCredentials
	}

	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return principal.Principal{}, errs.Wrap(ErrInvalidCredentials, err.Error())
	}

	user, err := p.reads.UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return principal.Principal{}, ErrInvalidCredentials
		}
		return principal.Principal{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	role, err := principal.NewRole(user.Role)
	if err != nil {
		return principal.Principal{}, errs.Wrap(ErrInvalidCredentials, err.Error())
	}
	return principal.New(user.ID, role, user.Approved)
}
