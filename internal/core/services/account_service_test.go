package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
)

func TestAccountService_GetAccount(t *testing.T) {
	store := newSeededStore()
	svc := services.NewAccountService(store.Accounts(), store.Businesses())
	ctx := context.Background()

	acc, err := svc.GetAccount(ctx, testBusinessID, cashID)
	require.NoError(t, err)
	assert.Equal(t, "1000", acc.Code)

	_, err = svc.GetAccount(ctx, testBusinessID, foreignID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetAccount(ctx, testBusinessID, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountService_ListAccounts(t *testing.T) {
	store := newSeededStore()
	svc := services.NewAccountService(store.Accounts(), store.Businesses())
	ctx := context.Background()

	all, err := svc.ListAccounts(ctx, testBusinessID, dto.ListAccountsParams{})
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "1000", all[0].Code)

	postable, err := svc.ListAccounts(ctx, testBusinessID, dto.ListAccountsParams{PostableOnly: true})
	require.NoError(t, err)
	assert.Len(t, postable, 5)

	assets := domain.Asset
	onlyAssets, err := svc.ListAccounts(ctx, testBusinessID, dto.ListAccountsParams{AccountType: &assets, PostableOnly: true})
	require.NoError(t, err)
	require.Len(t, onlyAssets, 2)
	assert.Equal(t, bankID, onlyAssets[1].AccountID)

	_, err = svc.ListAccounts(ctx, "missing", dto.ListAccountsParams{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
