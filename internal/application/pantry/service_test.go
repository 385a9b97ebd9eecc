package pantry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/nutrition"
	domain "github.com/kaloria/v1/internal/domain/pantry"
	"github.com/kaloria/v1/internal/ports/inbound"
)

type fakePantryRepo struct {
	entries map[uuid.UUID]*domain.Entry
	findErr error
}

func (f *fakePantryRepo) Save(ctx context.Context, entry *domain.Entry) error {
	f.entries[entry.ID()] = entry
	return nil
}

func (f *fakePantryRepo) FindByUserAndIngredient(ctx context.Context, userID, ingredientID uuid.UUID) (*domain.Entry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, e := range f.entries {
		if e.UserID() == userID && e.IngredientID() == ingredientID {
			return e, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakePantryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for _, e := range f.entries {
		if e.UserID() == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *fakePantryRepo) OwnedIngredientIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	owned := map[uuid.UUID]bool{}
	for _, e := range f.entries {
		if e.UserID() == userID {
			owned[e.IngredientID()] = true
		}
	}
	return owned, nil
}

func (f *fakePantryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.entries[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*nutrition.Ingredient
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *nutrition.Ingredient) error {
	f.ingredients[ingredient.ID()] = ingredient
	return nil
}

func (f *fakeIngredientRepo) Update(ctx context.Context, ingredient *nutrition.Ingredient) error {
	return nil
}

func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, nutrition.ErrIngredientNotFound
	}
	return ingredient, nil
}

func (f *fakeIngredientRepo) FindByName(ctx context.Context, name string) (*nutrition.Ingredient, error) {
	for _, ing := range f.ingredients {
		if ing.Name() == name {
			return ing, nil
		}
	}
	return nil, nutrition.ErrIngredientNotFound
}

func (f *fakeIngredientRepo) List(ctx context.Context, offset, limit int) ([]*nutrition.Ingredient, int64, error) {
	return nil, 0, nil
}

func (f *fakeIngredientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// PantryServiceTestSuite exercises pantry stocking against fakes
type PantryServiceTestSuite struct {
	suite.Suite
	pantryRepo     *fakePantryRepo
	ingredientRepo *fakeIngredientRepo
	service        *Service
	userID         uuid.UUID
	oats           *nutrition.Ingredient
}

func (suite *PantryServiceTestSuite) SetupTest() {
	suite.pantryRepo = &fakePantryRepo{entries: map[uuid.UUID]*domain.Entry{}}
	suite.ingredientRepo = &fakeIngredientRepo{ingredients: map[uuid.UUID]*nutrition.Ingredient{}}
	suite.service = NewService(suite.pantryRepo, suite.ingredientRepo, zap.NewNop())
	suite.userID = uuid.New()

	oats, err := nutrition.NewIngredient("oats", "g", 3.89)
	require.NoError(suite.T(), err)
	suite.oats = oats
	suite.ingredientRepo.ingredients[oats.ID()] = oats
}

func (suite *PantryServiceTestSuite) TestAddItem() {
	suite.Run("NewIngredient_ShouldCreateEntry", func() {
		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     500,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "oats", item.IngredientName)
		assert.InDelta(suite.T(), 500, item.Quantity, 0.001)
		assert.WithinDuration(suite.T(), time.Now(), item.UpdatedAt, time.Second)
	})

	suite.Run("ExistingIngredient_ShouldAccumulateQuantity", func() {
		_, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     250,
		})
		require.NoError(suite.T(), err)

		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     250,
		})

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1000, item.Quantity, 0.001)

		entries, err := suite.pantryRepo.ListByUser(context.Background(), suite.userID)
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), entries, 1)
	})

	suite.Run("RepositoryFailure_ShouldPropagateError", func() {
		lookupErr := errors.New("connection reset")
		suite.pantryRepo.findErr = lookupErr

		_, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     100,
		})

		assert.ErrorIs(suite.T(), err, lookupErr)
		suite.pantryRepo.findErr = nil
	})

	suite.Run("UnknownIngredient_ShouldFail", func() {
		_, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: uuid.New(),
			Quantity:     100,
		})

		assert.ErrorIs(suite.T(), err, nutrition.ErrIngredientNotFound)
	})
}

func (suite *PantryServiceTestSuite) TestUpdateItem() {
	suite.Run("OwnEntry_ShouldOverwriteQuantity", func() {
		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     500,
		})
		require.NoError(suite.T(), err)

		updated, err := suite.service.UpdateItem(context.Background(), inbound.UpdatePantryItemCommand{
			UserID:   suite.userID,
			EntryID:  item.ID,
			Quantity: 120,
		})

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 120, updated.Quantity, 0.001)
		assert.Equal(suite.T(), "oats", updated.IngredientName)
	})

	suite.Run("OtherUsersEntry_ShouldReturnNotFound", func() {
		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     100,
		})
		require.NoError(suite.T(), err)

		_, err = suite.service.UpdateItem(context.Background(), inbound.UpdatePantryItemCommand{
			UserID:   uuid.New(),
			EntryID:  item.ID,
			Quantity: 50,
		})

		assert.ErrorIs(suite.T(), err, domain.ErrItemNotFound)
	})
}

func (suite *PantryServiceTestSuite) TestRemoveItem() {
	suite.Run("OwnEntry_ShouldDelete", func() {
		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     100,
		})
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), suite.service.RemoveItem(context.Background(), suite.userID, item.ID))

		entries, err := suite.pantryRepo.ListByUser(context.Background(), suite.userID)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), entries)
	})

	suite.Run("OtherUsersEntry_ShouldReturnNotFound", func() {
		item, err := suite.service.AddItem(context.Background(), inbound.AddPantryItemCommand{
			UserID:       suite.userID,
			IngredientID: suite.oats.ID(),
			Quantity:     100,
		})
		require.NoError(suite.T(), err)

		err = suite.service.RemoveItem(context.Background(), uuid.New(), item.ID)

		assert.ErrorIs(suite.T(), err, domain.ErrItemNotFound)
	})
}

func TestPantryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PantryServiceTestSuite))
}
