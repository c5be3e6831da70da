package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/benvisser/call-of-doody-sub000/geo"
	"github.com/benvisser/call-of-doody-sub000/geo/mocks"
	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/score"
	"github.com/benvisser/call-of-doody-sub000/utils"
)

var testNow = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

var (
	scenarioVoteLocationID   = primitive.NewObjectID()
	duplicateVoteLocationID  = primitive.NewObjectID()
	concurrentVoteLocationID = primitive.NewObjectID()
	legacyListLocationID     = primitive.NewObjectID()
	legacyMapLocationID      = primitive.NewObjectID()
	migrateListLocationID    = primitive.NewObjectID()
	migrateMapLocationID     = primitive.NewObjectID()
	rebuildLocationID        = primitive.NewObjectID()
	reviewLocationID         = primitive.NewObjectID()
	legacyReviewLocationID   = primitive.NewObjectID()
	emptyReviewLocationID    = primitive.NewObjectID()
	deleteReviewLocationID   = primitive.NewObjectID()
	nearbyLocationID         = primitive.NewObjectID()
	farLocationID            = primitive.NewObjectID()

	helpfulReviewID = primitive.NewObjectID()
	ownedReviewID   = primitive.NewObjectID()
	orphanReviewID  = primitive.NewObjectID()

	notFoundLocationID = primitive.NewObjectID()
	orphanLocationID   = primitive.NewObjectID()
)

func locationFixture(id primitive.ObjectID, name string, lng, lat float64) schema.Location {
	return schema.Location{
		ID:                 id,
		Name:               name,
		Location:           &schema.GeoJSON{Type: "Point", Coordinates: []float64{lng, lat}},
		Amenities:          schema.CurrentAmenities(nil),
		ConfirmedAmenities: []string{},
		CreatedAt:          testNow,
		UpdatedAt:          testNow,
	}
}

type StoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	mockResolver *mocks.MockLocationResolver
	mockSearcher *mocks.MockLocationSearcher
	store        MongoStore
}

func NewStoreTestSuite(connURI, dbName string) *StoreTestSuite {
	return &StoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *StoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(s.connURI))
	if nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err)
	}

	ctrl := gomock.NewController(s.T())
	s.mockResolver = mocks.NewMockLocationResolver(ctrl)
	s.mockSearcher = mocks.NewMockLocationSearcher(ctrl)
	geo.SetLocationResolver(s.mockResolver)
	geo.SetLocationSearcher(s.mockSearcher)

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName, WithClock(func() time.Time { return testNow }))

	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *StoreTestSuite) TearDownSuite() {
	s.mongoClient.Disconnect(context.Background())
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *StoreTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	rebuildLocation := locationFixture(rebuildLocationID, "rebuild", 121.5, 25.05)
	rebuildLocation.Amenities = schema.CurrentAmenities(schema.LocationAmenities{
		"toilet_paper": {Votes: 1, ConfirmVotes: 1, Percentage: 100, Status: schema.AmenityStatusUnverified},
		"mirror":       schema.NewAmenityStatusEntry(),
	})

	if _, err := s.testDatabase.Collection(schema.LocationCollection).InsertMany(ctx, []interface{}{
		locationFixture(scenarioVoteLocationID, "scenario", 121.5, 25.01),
		locationFixture(duplicateVoteLocationID, "duplicate", 121.5, 25.02),
		locationFixture(concurrentVoteLocationID, "concurrent", 121.5, 25.03),
		locationFixture(reviewLocationID, "review", 121.5, 25.04),
		locationFixture(emptyReviewLocationID, "empty review", 121.5, 25.06),
		locationFixture(deleteReviewLocationID, "delete review", 121.5, 25.07),
		locationFixture(legacyReviewLocationID, "legacy review", 121.5, 25.08),
		locationFixture(nearbyLocationID, "nearby", -73.9870, 40.7385),
		locationFixture(farLocationID, "far", -73.5, 40.9),
		rebuildLocation,
		bson.M{"_id": legacyListLocationID, "name": "legacy list", "amenities": bson.A{"toilet_paper", "mirror", "accessible"}},
		bson.M{"_id": legacyMapLocationID, "name": "legacy map", "amenities": bson.M{"paper": true, "accessible": true}},
		bson.M{"_id": migrateListLocationID, "name": "migrate list", "amenities": bson.A{"hand_soap"}},
		bson.M{"_id": migrateMapLocationID, "name": "migrate map", "amenities": bson.M{"gender_neutral": true, "baby_changing": true}},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.AmenityVoteCollection).InsertMany(ctx, []interface{}{
		schema.AmenityVote{Key: schema.VoteKey{LocationID: rebuildLocationID, UserID: "r1", AmenityID: "toilet_paper"}, Vote: schema.VoteConfirm, CreatedAt: testNow},
		schema.AmenityVote{Key: schema.VoteKey{LocationID: rebuildLocationID, UserID: "r2", AmenityID: "toilet_paper"}, Vote: schema.VoteConfirm, CreatedAt: testNow},
		schema.AmenityVote{Key: schema.VoteKey{LocationID: rebuildLocationID, UserID: "r3", AmenityID: "toilet_paper"}, Vote: schema.VoteConfirm, CreatedAt: testNow},
		schema.AmenityVote{Key: schema.VoteKey{LocationID: rebuildLocationID, UserID: "r4", AmenityID: "toilet_paper"}, Vote: schema.VoteDeny, CreatedAt: testNow},
		schema.AmenityVote{Key: schema.VoteKey{LocationID: rebuildLocationID, UserID: "r5", AmenityID: "toilet_paper"}, Vote: schema.VoteConfirm, CreatedAt: testNow},
	}); err != nil {
		return err
	}

	five, three := 5, 3
	if _, err := s.testDatabase.Collection(schema.ReviewCollection).InsertMany(ctx, []interface{}{
		bson.M{"_id": primitive.NewObjectID(), "location_id": legacyReviewLocationID, "cleanliness": 2.0, "created_at": testNow},
		schema.Review{
			ID:         primitive.NewObjectID(),
			LocationID: legacyReviewLocationID,
			UserID:     "legacy-user",
			Ratings:    &schema.CategoryRatings{Cleanliness: &five, Supplies: &three},
			CreatedAt:  testNow,
		},
		schema.Review{
			ID:         helpfulReviewID,
			LocationID: deleteReviewLocationID,
			UserID:     "other-user",
			Ratings:    &schema.CategoryRatings{Cleanliness: &five, Supplies: &five, Accessibility: &five, WaitTime: &five},
			CreatedAt:  testNow,
		},
		schema.Review{
			ID:         ownedReviewID,
			LocationID: deleteReviewLocationID,
			UserID:     "owner",
			Ratings:    &schema.CategoryRatings{Cleanliness: &three, Supplies: &three, Accessibility: &three, WaitTime: &three},
			CreatedAt:  testNow,
		},
		schema.Review{
			ID:         orphanReviewID,
			LocationID: orphanLocationID,
			UserID:     "owner",
			Ratings:    &schema.CategoryRatings{Cleanliness: &three, Supplies: &three, Accessibility: &three, WaitTime: &three},
			CreatedAt:  testNow,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *StoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *StoreTestSuite) loadAmenities(id primitive.ObjectID) (schema.RawAmenities, []string) {
	var doc struct {
		Amenities          schema.RawAmenities `bson:"amenities"`
		ConfirmedAmenities []string            `bson:"confirmed_amenities"`
	}
	err := s.testDatabase.Collection(schema.LocationCollection).FindOne(context.Background(), bson.M{"_id": id}).Decode(&doc)
	s.NoError(err)
	return doc.Amenities, doc.ConfirmedAmenities
}

func vote(locationID primitive.ObjectID, userID, amenityID string, v schema.VoteValue) schema.AmenityVote {
	return schema.AmenityVote{
		Key:  schema.VoteKey{LocationID: locationID, UserID: userID, AmenityID: amenityID},
		Vote: v,
	}
}

func ratingsOf(cleanliness, supplies, accessibility, waitTime int) schema.CategoryRatings {
	return schema.CategoryRatings{
		Cleanliness:   &cleanliness,
		Supplies:      &supplies,
		Accessibility: &accessibility,
		WaitTime:      &waitTime,
	}
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, NewStoreTestSuite("mongodb://localhost:27017/?replicaSet=rs0", "test-restroom-db"))
}

func (s *StoreTestSuite) TestApplyVoteScenario() {
	ctx := context.Background()

	votes := []schema.VoteValue{schema.VoteConfirm, schema.VoteDeny, schema.VoteConfirm, schema.VoteDeny, schema.VoteConfirm}
	var outcome *schema.VoteOutcome
	var err error
	for i, v := range votes {
		outcome, err = s.store.ApplyVote(ctx, vote(scenarioVoteLocationID, fmt.Sprintf("user-%d", i), "toilet_paper", v))
		s.NoError(err)
	}

	s.Equal(5, outcome.Entry.Votes)
	s.Equal(3, outcome.Entry.ConfirmVotes)
	s.Equal(2, outcome.Entry.DenyVotes)
	s.Equal(60, outcome.Entry.Percentage)
	s.Equal(schema.AmenityStatusConfirmed, outcome.Entry.Status)
	s.Equal(schema.AmenityStatusUnverified, outcome.PreviousStatus)
	s.True(outcome.StatusChanged())
	s.Equal([]string{"toilet_paper"}, outcome.ConfirmedAmenities)

	raw, confirmed := s.loadAmenities(scenarioVoteLocationID)
	s.Equal(schema.AmenityFormatCurrent, raw.Format)
	s.Equal(schema.AmenityStatusConfirmed, raw.Current["toilet_paper"].Status)
	s.Equal(testNow, raw.Current["toilet_paper"].LastUpdated.UTC())
	s.Contains(confirmed, "toilet_paper")

	outcome, err = s.store.ApplyVote(ctx, vote(scenarioVoteLocationID, "user-6", "toilet_paper", schema.VoteDeny))
	s.NoError(err)
	s.Equal(6, outcome.Entry.Votes)
	s.Equal(50, outcome.Entry.Percentage)
	s.Equal(schema.AmenityStatusDisputed, outcome.Entry.Status)

	_, confirmed = s.loadAmenities(scenarioVoteLocationID)
	s.NotContains(confirmed, "toilet_paper")
}

func (s *StoreTestSuite) TestApplyVoteDuplicate() {
	ctx := context.Background()
	v := vote(duplicateVoteLocationID, "same-user", "hand_soap", schema.VoteConfirm)

	outcome, err := s.store.ApplyVote(ctx, v)
	s.NoError(err)
	s.Equal(1, outcome.Entry.Votes)

	voted, err := s.store.HasVoted(ctx, v.Key)
	s.NoError(err)
	s.True(voted)

	v.Vote = schema.VoteDeny
	_, err = s.store.ApplyVote(ctx, v)
	s.Equal(ErrDuplicateVote, err)

	raw, _ := s.loadAmenities(duplicateVoteLocationID)
	s.Equal(1, raw.Current["hand_soap"].Votes)
	s.Equal(1, raw.Current["hand_soap"].ConfirmVotes)
	s.Equal(0, raw.Current["hand_soap"].DenyVotes)
}

func (s *StoreTestSuite) TestApplyVoteLocationNotFound() {
	ctx := context.Background()
	v := vote(notFoundLocationID, "someone", "mirror", schema.VoteConfirm)

	_, err := s.store.ApplyVote(ctx, v)
	s.Equal(ErrLocationNotFound, err)

	voted, err := s.store.HasVoted(ctx, v.Key)
	s.NoError(err)
	s.False(voted)
}

func (s *StoreTestSuite) TestApplyVoteRejectsUnknownAmenityAndValue() {
	ctx := context.Background()

	_, err := s.store.ApplyVote(ctx, vote(scenarioVoteLocationID, "someone", "jacuzzi", schema.VoteConfirm))
	s.Equal(ErrUnknownAmenity, err)

	_, err = s.store.ApplyVote(ctx, vote(scenarioVoteLocationID, "someone", "mirror", "maybe"))
	s.Equal(ErrInvalidVote, err)
}

func (s *StoreTestSuite) TestApplyVoteConcurrently() {
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.store.ApplyVote(ctx, vote(concurrentVoteLocationID, fmt.Sprintf("c-%d", i), "free", schema.VoteConfirm))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	raw, confirmed := s.loadAmenities(concurrentVoteLocationID)
	s.Equal(10, raw.Current["free"].Votes)
	s.Equal(10, raw.Current["free"].ConfirmVotes)
	s.Equal(schema.AmenityStatusConfirmed, raw.Current["free"].Status)
	s.Equal([]string{"free"}, confirmed)
}

func (s *StoreTestSuite) TestApplyVoteOnLegacyList() {
	ctx := context.Background()

	outcome, err := s.store.ApplyVote(ctx, vote(legacyListLocationID, "legacy-voter", "toilet_paper", schema.VoteConfirm))
	s.NoError(err)
	s.Equal(1, outcome.Entry.Votes)

	outcome, err = s.store.ApplyVote(ctx, vote(legacyListLocationID, "legacy-voter", "wheelchair_accessible", schema.VoteConfirm))
	s.NoError(err)
	s.Equal(1, outcome.Entry.Votes)

	raw, _ := s.loadAmenities(legacyListLocationID)
	s.Equal(schema.AmenityFormatCurrent, raw.Format)
	s.Len(raw.Current, 3)
	s.Equal(1, raw.Current["toilet_paper"].ConfirmVotes)
	s.Equal(1, raw.Current["wheelchair_accessible"].ConfirmVotes)
	s.NotContains(raw.Current, "accessible")
	s.Equal(schema.AmenityStatusUnverified, raw.Current["mirror"].Status)
}

func (s *StoreTestSuite) TestGetLocationNormalizesLegacyMap() {
	location, err := s.store.GetLocation(context.Background(), legacyMapLocationID)
	s.NoError(err)
	s.Equal(schema.AmenityFormatCurrent, location.Amenities.Format)
	s.Contains(location.Amenities.Current, "toilet_paper")
	s.Contains(location.Amenities.Current, "wheelchair_accessible")
	s.NotContains(location.Amenities.Current, "paper")
	s.Equal([]string{}, location.ConfirmedAmenities)

	_, err = s.store.GetLocation(context.Background(), notFoundLocationID)
	s.Equal(ErrLocationNotFound, err)
}

func (s *StoreTestSuite) TestMigrateLocationAmenities() {
	ctx := context.Background()

	migrated, err := s.store.MigrateLocationAmenities(ctx)
	s.NoError(err)
	s.GreaterOrEqual(migrated, 2)

	raw, _ := s.loadAmenities(migrateListLocationID)
	s.Equal(schema.AmenityFormatCurrent, raw.Format)
	s.Equal(schema.NewAmenityStatusEntry(), raw.Current["hand_soap"])

	raw, _ = s.loadAmenities(migrateMapLocationID)
	s.Equal(schema.AmenityFormatCurrent, raw.Format)
	s.Contains(raw.Current, "all_gender")
	s.Contains(raw.Current, "baby_changing_station")

	migrated, err = s.store.MigrateLocationAmenities(ctx)
	s.NoError(err)
	s.Equal(0, migrated)
}

func (s *StoreTestSuite) TestRebuildAmenityStatus() {
	amenities, err := s.store.RebuildAmenityStatus(context.Background(), rebuildLocationID)
	s.NoError(err)
	s.Equal(5, amenities["toilet_paper"].Votes)
	s.Equal(4, amenities["toilet_paper"].ConfirmVotes)
	s.Equal(80, amenities["toilet_paper"].Percentage)
	s.Equal(schema.AmenityStatusConfirmed, amenities["toilet_paper"].Status)
	s.Equal(schema.NewAmenityStatusEntry(), amenities["mirror"])

	_, confirmed := s.loadAmenities(rebuildLocationID)
	s.Equal([]string{"toilet_paper"}, confirmed)
}

func (s *StoreTestSuite) TestSubmitReviewScenario() {
	ctx := context.Background()

	review, ratings, err := s.store.SubmitReview(ctx, schema.ReviewInput{
		LocationID: reviewLocationID,
		UserID:     "r1",
		Ratings:    ratingsOf(5, 5, 5, 5),
		Comment:    "  spotless  ",
	})
	s.NoError(err)
	s.Equal(5.0, review.AverageRating)
	s.Equal("spotless", review.Comment)
	s.Equal(5.0, ratings.Overall)
	s.Equal(5.0, ratings.Cleanliness)
	s.Equal(int64(1), ratings.Count)

	_, ratings, err = s.store.SubmitReview(ctx, schema.ReviewInput{
		LocationID: reviewLocationID,
		UserID:     "r2",
		Ratings:    ratingsOf(3, 3, 3, 3),
	})
	s.NoError(err)
	s.Equal(4.0, ratings.Overall)
	s.Equal(4.0, ratings.Cleanliness)
	s.Equal(int64(2), ratings.Count)

	recomputed, err := s.store.RecomputeRatings(ctx, reviewLocationID)
	s.NoError(err)
	s.Equal(4.0, recomputed.Overall)
	s.Equal(4.0, recomputed.Cleanliness)
	s.Equal(4.0, recomputed.WaitTime)
	s.Equal(int64(2), recomputed.Count)

	reviews, err := s.store.ListReviews(ctx, reviewLocationID, 10)
	s.NoError(err)
	s.Len(reviews, 2)
}

func (s *StoreTestSuite) TestSubmitReviewValidation() {
	ctx := context.Background()

	_, _, err := s.store.SubmitReview(ctx, schema.ReviewInput{
		LocationID: emptyReviewLocationID,
		UserID:     "invalid",
		Ratings:    ratingsOf(4, 0, 3, 5),
	})
	s.Equal(score.ErrRatingsRequired, err)

	count, err := s.testDatabase.Collection(schema.ReviewCollection).CountDocuments(ctx, bson.M{"location_id": emptyReviewLocationID})
	s.NoError(err)
	s.Equal(int64(0), count)

	_, _, err = s.store.SubmitReview(ctx, schema.ReviewInput{
		LocationID: notFoundLocationID,
		UserID:     "valid",
		Ratings:    ratingsOf(4, 4, 4, 4),
	})
	s.Equal(ErrLocationNotFound, err)

	count, err = s.testDatabase.Collection(schema.ReviewCollection).CountDocuments(ctx, bson.M{"location_id": notFoundLocationID})
	s.NoError(err)
	s.Equal(int64(0), count)
}

func (s *StoreTestSuite) TestRecomputeRatingsNoReviews() {
	ratings, err := s.store.RecomputeRatings(context.Background(), emptyReviewLocationID)
	s.NoError(err)
	s.Equal(schema.LocationRatings{LastUpdated: testNow}, *ratings)

	_, err = s.store.RecomputeRatings(context.Background(), notFoundLocationID)
	s.Equal(ErrLocationNotFound, err)
}

func (s *StoreTestSuite) TestRecomputeRatingsWithLegacyReviews() {
	ratings, err := s.store.RecomputeRatings(context.Background(), legacyReviewLocationID)
	s.NoError(err)
	s.Equal(3.5, ratings.Cleanliness)
	s.Equal(3.0, ratings.Supplies)
	s.Equal(0.0, ratings.Accessibility)
	s.Equal(3.25, ratings.Overall)
	s.Equal(int64(2), ratings.Count)
}

func (s *StoreTestSuite) TestDeleteReview() {
	ctx := context.Background()

	_, _, err := s.store.DeleteReview(ctx, "intruder", ownedReviewID)
	s.Equal(ErrReviewNotOwned, err)

	review, ratings, err := s.store.DeleteReview(ctx, "owner", ownedReviewID)
	s.NoError(err)
	s.Equal(deleteReviewLocationID, review.LocationID)
	s.Equal(5.0, ratings.Overall)
	s.Equal(int64(1), ratings.Count)

	count, err := s.testDatabase.Collection(schema.ReviewCollection).CountDocuments(ctx, bson.M{"_id": ownedReviewID})
	s.NoError(err)
	s.Equal(int64(0), count)

	var location schema.Location
	s.NoError(s.testDatabase.Collection(schema.LocationCollection).FindOne(ctx, bson.M{"_id": deleteReviewLocationID}).Decode(&location))
	s.Equal(int64(1), location.Ratings.Count)
	s.Equal(5.0, location.Ratings.Overall)

	_, _, err = s.store.DeleteReview(ctx, "owner", ownedReviewID)
	s.Equal(ErrReviewNotFound, err)
}

func (s *StoreTestSuite) TestDeleteReviewRollsBackWhenRatingsCannotBeUpdated() {
	ctx := context.Background()

	review, ratings, err := s.store.DeleteReview(ctx, "owner", orphanReviewID)
	s.Equal(ErrLocationNotFound, err)
	s.Nil(review)
	s.Nil(ratings)

	count, err := s.testDatabase.Collection(schema.ReviewCollection).CountDocuments(ctx, bson.M{"_id": orphanReviewID})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *StoreTestSuite) TestMarkReviewHelpful() {
	ctx := context.Background()

	helpful, err := s.store.MarkReviewHelpful(ctx, helpfulReviewID)
	s.NoError(err)
	s.Equal(int64(1), helpful)

	helpful, err = s.store.MarkReviewHelpful(ctx, helpfulReviewID)
	s.NoError(err)
	s.Equal(int64(2), helpful)

	_, err = s.store.MarkReviewHelpful(ctx, primitive.NewObjectID())
	s.Equal(ErrReviewNotFound, err)
}

func (s *StoreTestSuite) TestRecomputeAllRatings() {
	updated, err := s.store.RecomputeAllRatings(context.Background())
	s.NoError(err)
	s.GreaterOrEqual(updated, 10)
}

func (s *StoreTestSuite) TestAddLocation() {
	ctx := context.Background()

	s.mockResolver.EXPECT().
		GetPoliticalInfo(gomock.Any(), schema.Coordinates{Latitude: 40.7359, Longitude: -73.9911}).
		Return(geo.PoliticalInfo{
			FormattedAddress: "Union Square, New York, NY 10003, USA",
			Country:          "United States",
			State:            "New York",
			City:             "New York",
		}, nil)

	location, err := s.store.AddLocation(ctx, schema.NewLocation{
		Name:        " Union Square Station ",
		Coordinates: schema.Coordinates{Latitude: 40.7359, Longitude: -73.9911},
		Amenities:   []string{"paper", "mirror"},
		CreatedBy:   "creator",
	})
	s.NoError(err)
	s.Equal("Union Square Station", location.Name)
	s.Equal("Union Square, New York, NY 10003, USA", location.Address)
	s.Equal("United States", location.Country)
	s.Equal([]float64{-73.9911, 40.7359}, location.Location.Coordinates)

	stored, err := s.store.GetLocation(ctx, location.ID)
	s.NoError(err)
	s.Equal("New York", stored.City)
	s.Len(stored.Amenities.Current, 2)
	s.Contains(stored.Amenities.Current, "toilet_paper")
	s.Equal(schema.AmenityStatusUnverified, stored.Amenities.Current["mirror"].Status)
}

func (s *StoreTestSuite) TestAddLocationResolverFailureKeepsAddress() {
	s.mockResolver.EXPECT().
		GetPoliticalInfo(gomock.Any(), gomock.AssignableToTypeOf(schema.Coordinates{})).
		Return(geo.PoliticalInfo{}, fmt.Errorf("quota exceeded"))

	location, err := s.store.AddLocation(context.Background(), schema.NewLocation{
		Name:        "Cafe",
		Address:     "1 Main St",
		Coordinates: schema.Coordinates{Latitude: 10, Longitude: 20},
	})
	s.NoError(err)
	s.Equal("1 Main St", location.Address)
	s.Equal("", location.Country)
}

func (s *StoreTestSuite) TestAddLocationLooksUpCoordinates() {
	s.mockSearcher.EXPECT().
		LookupCoordinate(gomock.Any(), "Grand Central Terminal").
		Return(schema.Coordinates{Latitude: 40.7527, Longitude: -73.9772}, nil)
	s.mockResolver.EXPECT().
		GetPoliticalInfo(gomock.Any(), schema.Coordinates{Latitude: 40.7527, Longitude: -73.9772}).
		Return(geo.PoliticalInfo{Country: "United States"}, nil)

	location, err := s.store.AddLocation(context.Background(), schema.NewLocation{
		Name:    "Grand Central",
		Address: "Grand Central Terminal",
	})
	s.NoError(err)
	s.Equal(40.7527, location.Coordinates().Latitude)
}

func (s *StoreTestSuite) TestAddLocationInvalid() {
	ctx := context.Background()

	_, err := s.store.AddLocation(ctx, schema.NewLocation{Coordinates: schema.Coordinates{Latitude: 1, Longitude: 1}})
	s.Equal(ErrInvalidLocation, err)

	_, err = s.store.AddLocation(ctx, schema.NewLocation{Name: "x", Coordinates: schema.Coordinates{Latitude: 91, Longitude: 1}})
	s.Equal(ErrInvalidLocation, err)

	_, err = s.store.AddLocation(ctx, schema.NewLocation{Name: "x", Coordinates: schema.Coordinates{Latitude: 1, Longitude: 1}, Amenities: []string{"jacuzzi"}})
	s.Equal(ErrUnknownAmenity, err)
}

func (s *StoreTestSuite) TestNearbyLocations() {
	ctx := context.Background()
	center := schema.Coordinates{Latitude: 40.7385105, Longitude: -73.98697609999999}

	locations, err := s.store.NearbyLocations(ctx, center, 0.2, "", 10)
	s.NoError(err)
	s.Len(locations, 1)
	s.Equal(nearbyLocationID, locations[0].ID)
	s.Equal(0.0, locations[0].Distance)

	locations, err = s.store.NearbyLocations(ctx, center, 50, "", 10)
	s.NoError(err)
	s.GreaterOrEqual(len(locations), 2)
	s.Equal(nearbyLocationID, locations[0].ID)

	locations, err = s.store.NearbyLocations(ctx, center, 50, "hot_water", 10)
	s.NoError(err)
	s.Len(locations, 0)

	_, err = s.store.NearbyLocations(ctx, center, 1, "jacuzzi", 10)
	s.Equal(ErrUnknownAmenity, err)
}
