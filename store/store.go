package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/benvisser/call-of-doody-sub000/score"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 10 * time.Second

	// maintenanceTimeout bounds batch jobs that walk every location.
	maintenanceTimeout = 10 * time.Minute
)

var (
	ErrLocationNotFound = fmt.Errorf("location not found")
	ErrDuplicateVote    = fmt.Errorf("user already voted on this amenity")
	ErrUnknownAmenity   = fmt.Errorf("unknown amenity")
	ErrInvalidVote      = fmt.Errorf("invalid vote value")
	ErrReviewNotFound   = fmt.Errorf("review not found")
	ErrReviewNotOwned   = fmt.Errorf("review is not owned by user")
	ErrInvalidLocation  = fmt.Errorf("invalid location")
)

type MongoStore interface {
	Location
	AmenityVote
	Review
	Maintenance
	Ping(ctx context.Context) error
}

type mongoDB struct {
	client     *mongo.Client
	database   string
	thresholds score.StatusThresholds
	now        score.Clock
}

type Option func(*mongoDB)

// WithStatusThresholds overrides the vote counts needed to settle an amenity status.
func WithStatusThresholds(t score.StatusThresholds) Option {
	return func(m *mongoDB) {
		m.thresholds = t
	}
}

func WithClock(clock score.Clock) Option {
	return func(m *mongoDB) {
		m.now = clock
	}
}

func NewMongoStore(client *mongo.Client, database string, opts ...Option) MongoStore {
	m := &mongoDB{
		client:     client,
		database:   database,
		thresholds: score.DefaultThresholds,
		now:        score.SystemClock,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *mongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// withTransaction runs fn in a snapshot transaction. Write conflicts with
// concurrent transactions on the same document are retried by the driver.
func (m *mongoDB) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := m.client.StartSession()
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("start session")
		return nil, err
	}
	defer session.EndSession(context.Background())

	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return session.WithTransaction(ctx, fn, opts)
}
