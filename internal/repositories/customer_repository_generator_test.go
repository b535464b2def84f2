package repositories

import (
	"testing"

	"customer-service/internal/models"
	"customer-service/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_UsesGeneratorForIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ids := repository_mocks.NewMockIDGenerator(ctrl)
	gomock.InOrder(
		ids.EXPECT().NextID().Return(int64(100)),
		ids.EXPECT().NextID().Return(int64(250)),
	)

	repo := NewCustomerRepository(ids)

	first, err := repo.Create(&models.Customer{FirstName: "first"})
	require.NoError(t, err)
	second, err := repo.Create(&models.Customer{FirstName: "second"})
	require.NoError(t, err)

	assert.Equal(t, int64(100), first.ID)
	assert.Equal(t, int64(250), second.ID)

	found, err := repo.FindByID(250)
	require.NoError(t, err)
	assert.Equal(t, "second", found.FirstName)
}

func TestCustomerRepository_ClearResetsGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ids := repository_mocks.NewMockIDGenerator(ctrl)
	ids.EXPECT().Reset().Times(1)

	repo := NewCustomerRepository(ids)
	assert.NoError(t, repo.Clear())
}
