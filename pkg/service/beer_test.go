package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"jordan.com/BeerStore/mocks"
	"jordan.com/BeerStore/pkg/model"
	"jordan.com/BeerStore/pkg/repository"
	"jordan.com/BeerStore/pkg/service"
)

type BeerServiceTestSuite struct {
	suite.Suite
	beerRepo     *mocks.BeerRepository
	service      *service.BeerService
	observedLogs *observer.ObservedLogs
}

func TestBeerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BeerServiceTestSuite))
}

func (suite *BeerServiceTestSuite) SetupTest() {
	suite.beerRepo = mocks.NewBeerRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = service.NewBeerService(suite.beerRepo, zap.New(observedZapCore))
}

func (suite *BeerServiceTestSuite) TestRegister_SavesNewBeer() {
	ctx := context.Background()
	candidate := model.Beer{Name: "IPA", Type: "Ale"}

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(model.Beer{}, false, nil).Once()
	suite.beerRepo.EXPECT().SaveBeer(ctx, candidate).Return(&model.Beer{Model: gorm.Model{ID: 7}, Name: "IPA", Type: "Ale"}, nil).Once()

	result, err := suite.service.Register(ctx, candidate)
	suite.Require().NoError(err)
	suite.Equal(uint(7), result.ID)
	suite.Equal("IPA", result.Name)
	suite.Equal("Ale", result.Type)
	suite.Equal(1, suite.observedLogs.FilterMessage("registered beer").Len())
}

func (suite *BeerServiceTestSuite) TestRegister_RejectsExistingBeer() {
	ctx := context.Background()
	existing := model.Beer{Model: gorm.Model{ID: 1}, Name: "IPA", Type: "Ale"}

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(existing, true, nil).Once()

	result, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale"})
	suite.Require().ErrorIs(err, service.ErrBeerAlreadyExists)
	suite.Nil(result)
	suite.beerRepo.AssertNotCalled(suite.T(), "SaveBeer", mock.Anything, mock.Anything)
}

func (suite *BeerServiceTestSuite) TestRegister_TrimsNameAndType() {
	ctx := context.Background()

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(model.Beer{}, false, nil).Once()
	suite.beerRepo.EXPECT().SaveBeer(ctx, model.Beer{Name: "IPA", Type: "Ale", Brewery: " Driftwood "}).
		Return(&model.Beer{Model: gorm.Model{ID: 3}, Name: "IPA", Type: "Ale", Brewery: " Driftwood "}, nil).Once()

	result, err := suite.service.Register(ctx, model.Beer{Name: " IPA ", Type: "Ale\t", Brewery: " Driftwood "})
	suite.Require().NoError(err)
	suite.Equal("IPA", result.Name)
}

func (suite *BeerServiceTestSuite) TestRegister_UniqueIndexViolationIsDuplicate() {
	ctx := context.Background()
	candidate := model.Beer{Name: "IPA", Type: "Ale"}

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(model.Beer{}, false, nil).Once()
	suite.beerRepo.EXPECT().SaveBeer(ctx, candidate).Return(nil, repository.ErrDuplicateBeer).Once()

	result, err := suite.service.Register(ctx, candidate)
	suite.Require().ErrorIs(err, service.ErrBeerAlreadyExists)
	suite.Nil(result)
	suite.Equal(1, suite.observedLogs.FilterMessage("beer registered concurrently").Len())
}

func (suite *BeerServiceTestSuite) TestRegister_PropagatesLookupError() {
	ctx := context.Background()
	lookupErr := errors.New("connection refused")

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(model.Beer{}, false, lookupErr).Once()

	result, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale"})
	suite.Require().ErrorIs(err, lookupErr)
	suite.NotErrorIs(err, service.ErrBeerAlreadyExists)
	suite.Nil(result)
}

func (suite *BeerServiceTestSuite) TestRegister_PropagatesSaveError() {
	ctx := context.Background()
	saveErr := errors.New("disk full")
	candidate := model.Beer{Name: "IPA", Type: "Ale"}

	suite.beerRepo.EXPECT().FindBeerByNameAndType(ctx, "IPA", "Ale").Return(model.Beer{}, false, nil).Once()
	suite.beerRepo.EXPECT().SaveBeer(ctx, candidate).Return(nil, saveErr).Once()

	result, err := suite.service.Register(ctx, candidate)
	suite.Require().ErrorIs(err, saveErr)
	suite.Nil(result)
}

func (suite *BeerServiceTestSuite) TestRegister_RequiresNameAndType() {
	for _, candidate := range []model.Beer{
		{Name: "", Type: "Ale"},
		{Name: "  ", Type: "Ale"},
		{Name: "IPA", Type: ""},
	} {
		result, err := suite.service.Register(context.Background(), candidate)
		suite.Require().ErrorIs(err, service.ErrInvalidBeer)
		suite.Nil(result)
	}
}

func (suite *BeerServiceTestSuite) TestGet_ReturnsNotFound() {
	ctx := context.Background()

	suite.beerRepo.EXPECT().GetBeerByID(ctx, uint(42)).Return(nil, repository.ErrBeerNotFound).Once()

	result, err := suite.service.Get(ctx, 42)
	suite.Require().ErrorIs(err, repository.ErrBeerNotFound)
	suite.Nil(result)
}

func (suite *BeerServiceTestSuite) TestList_ReturnsBeers() {
	ctx := context.Background()
	beers := []*model.Beer{{Name: "IPA", Type: "Ale"}, {Name: "IPA", Type: "Lager"}}

	suite.beerRepo.EXPECT().GetBeers(ctx).Return(beers, nil).Once()

	result, err := suite.service.List(ctx)
	suite.Require().NoError(err)
	suite.Equal(beers, result)
}

// memoryRepository keeps beers in a slice and counts calls, so the tests below can look at the
// persisted set after a sequence of registrations.
type memoryRepository struct {
	mu     sync.Mutex
	beers  []model.Beer
	finds  int
	saves  int
	nextID uint
}

func (m *memoryRepository) FindBeerByNameAndType(_ context.Context, name string, beerType string) (model.Beer, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.finds++

	for _, beer := range m.beers {
		if beer.Name == name && beer.Type == beerType {
			return beer, true, nil
		}
	}

	return model.Beer{}, false, nil
}

func (m *memoryRepository) SaveBeer(_ context.Context, beer model.Beer) (*model.Beer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	m.nextID++
	beer.ID = m.nextID
	m.beers = append(m.beers, beer)

	return &beer, nil
}

func (m *memoryRepository) GetBeerByID(_ context.Context, beerID uint) (*model.Beer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, beer := range m.beers {
		if beer.ID == beerID {
			return &beer, nil
		}
	}

	return nil, repository.ErrBeerNotFound
}

func (m *memoryRepository) GetBeers(_ context.Context) ([]*model.Beer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	beers := make([]*model.Beer, 0, len(m.beers))
	for index := range m.beers {
		beers = append(beers, &m.beers[index])
	}

	return beers, nil
}

type BeerRegistrationTestSuite struct {
	suite.Suite
	repo    *memoryRepository
	service *service.BeerService
}

func TestBeerRegistrationTestSuite(t *testing.T) {
	suite.Run(t, new(BeerRegistrationTestSuite))
}

func (suite *BeerRegistrationTestSuite) SetupTest() {
	suite.repo = &memoryRepository{}
	suite.service = service.NewBeerService(suite.repo, zap.NewNop())
}

func (suite *BeerRegistrationTestSuite) TestRegisterIntoEmptyRepository() {
	ctx := context.Background()

	result, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale"})
	suite.Require().NoError(err)
	suite.NotZero(result.ID)

	stored, found, err := suite.repo.FindBeerByNameAndType(ctx, "IPA", "Ale")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(result.ID, stored.ID)
}

func (suite *BeerRegistrationTestSuite) TestSecondRegistrationOfSamePairFails() {
	ctx := context.Background()

	_, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale", Description: "first"})
	suite.Require().NoError(err)

	result, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale", Description: "second"})
	suite.Require().ErrorIs(err, service.ErrBeerAlreadyExists)
	suite.Nil(result)

	suite.Len(suite.repo.beers, 1)
	suite.Equal("first", suite.repo.beers[0].Description)
	suite.Equal(2, suite.repo.finds)
	suite.Equal(1, suite.repo.saves)
}

func (suite *BeerRegistrationTestSuite) TestPairsDifferingInOneFieldAreIndependent() {
	ctx := context.Background()

	for _, candidate := range []model.Beer{
		{Name: "IPA", Type: "Ale"},
		{Name: "IPA", Type: "Lager"},
		{Name: "Pilsner", Type: "Lager"},
		{Name: "ipa", Type: "Ale"},
	} {
		_, err := suite.service.Register(ctx, candidate)
		suite.Require().NoError(err, "%s/%s", candidate.Name, candidate.Type)
	}

	suite.Len(suite.repo.beers, 4)
}

func (suite *BeerRegistrationTestSuite) TestSurroundingWhitespaceDoesNotMakeANewBeer() {
	ctx := context.Background()

	_, err := suite.service.Register(ctx, model.Beer{Name: "IPA", Type: "Ale"})
	suite.Require().NoError(err)

	result, err := suite.service.Register(ctx, model.Beer{Name: "IPA ", Type: " Ale"})
	suite.Require().ErrorIs(err, service.ErrBeerAlreadyExists)
	suite.Nil(result)

	suite.Len(suite.repo.beers, 1)
	suite.Equal(1, suite.repo.saves)
}
