package service

import (
	"context"

	"github.com/openshelf/circulation-service/internal/errs"
	"github.com/openshelf/circulation-service/internal/model"
)

// The gate checks run strictly before any inventory mutation and
// short-circuit on first failure.

func (s *Service) assertActive(ctx context.Context, memberUid string) error {
	status, err := s.repo.GetMemberStatus(ctx, memberUid)
	if err != nil {
		return err
	}
	if status != model.MemberActive {
		return errs.ErrMemberSuspended
	}
	return nil
}

func (s *Service) assertUnderLoanQuota(ctx context.Context, memberUid string, max int) error {
	open, err := s.repo.CountOpenLoans(ctx, memberUid)
	if err != nil {
		return err
	}
	if open >= max {
		return errs.ErrQuotaExceeded
	}
	return nil
}

func (s *Service) assertUnderReservationQuota(ctx context.Context, memberUid string, max int) error {
	open, err := s.repo.CountOpenReservations(ctx, memberUid)
	if err != nil {
		return err
	}
	if open >= max {
		return errs.ErrQuotaExceeded
	}
	return nil
}
