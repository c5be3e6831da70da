package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AmenityVoteCollection = "amenityVotes"
)

type AmenityCategory string

const (
	AmenityCategoryEssentials    AmenityCategory = "essentials"
	AmenityCategoryAccessibility AmenityCategory = "accessibility"
	AmenityCategoryFacilities    AmenityCategory = "facilities"
	AmenityCategoryAccess        AmenityCategory = "access"
)

// Amenity is a catalog entry. The catalog is static reference data.
type Amenity struct {
	ID       string          `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Icon     string          `json:"icon" bson:"icon"`
	Category AmenityCategory `json:"category" bson:"category"`
	Priority int             `json:"priority" bson:"priority"`
}

type AmenityStatus string

const (
	AmenityStatusUnverified AmenityStatus = "unverified"
	AmenityStatusConfirmed  AmenityStatus = "confirmed"
	AmenityStatusDisputed   AmenityStatus = "disputed"
	AmenityStatusRemoved    AmenityStatus = "removed"
)

type VoteValue string

const (
	VoteConfirm VoteValue = "confirm"
	VoteDeny    VoteValue = "deny"
)

func (v VoteValue) Valid() bool {
	return v == VoteConfirm || v == VoteDeny
}

// AmenityStatusEntry is the crowd-verified state of one amenity at one location.
type AmenityStatusEntry struct {
	Votes        int           `json:"votes" bson:"votes"`
	ConfirmVotes int           `json:"confirm_votes" bson:"confirm_votes"`
	DenyVotes    int           `json:"deny_votes" bson:"deny_votes"`
	Percentage   int           `json:"percentage" bson:"percentage"`
	Status       AmenityStatus `json:"status" bson:"status"`
	LastUpdated  time.Time     `json:"last_updated" bson:"last_updated"`
}

// NewAmenityStatusEntry returns an entry without any votes.
func NewAmenityStatusEntry() AmenityStatusEntry {
	return AmenityStatusEntry{Status: AmenityStatusUnverified}
}

// LocationAmenities maps an amenity id to its status entry.
type LocationAmenities map[string]AmenityStatusEntry

// VoteKey identifies the single vote a user may cast on an amenity of a location.
// It is stored as the document _id so the uniqueness is enforced by the database.
type VoteKey struct {
	LocationID primitive.ObjectID `json:"location_id" bson:"location_id"`
	UserID     string             `json:"user_id" bson:"user_id"`
	AmenityID  string             `json:"amenity_id" bson:"amenity_id"`
}

type AmenityVote struct {
	Key       VoteKey   `json:"key" bson:"_id"`
	Vote      VoteValue `json:"vote" bson:"vote"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// VoteOutcome is the result of applying a single vote.
type VoteOutcome struct {
	AmenityID          string             `json:"amenity_id"`
	Entry              AmenityStatusEntry `json:"entry"`
	PreviousStatus     AmenityStatus      `json:"previous_status"`
	ConfirmedAmenities []string           `json:"confirmed_amenities"`
}

// StatusChanged tells whether the vote moved the amenity to another status.
func (o VoteOutcome) StatusChanged() bool {
	return o.PreviousStatus != o.Entry.Status
}

// AmenityFormat tags the shape in which the amenities of a location are stored.
type AmenityFormat int

const (
	// AmenityFormatCurrent is a map of amenity id to vote-shaped entries.
	AmenityFormatCurrent AmenityFormat = iota
	// AmenityFormatLegacyList is a plain list of amenity ids without votes.
	AmenityFormatLegacyList
	// AmenityFormatLegacyMap is a map keyed by old amenity ids whose values carry no votes.
	AmenityFormatLegacyMap
)

func (f AmenityFormat) String() string {
	switch f {
	case AmenityFormatCurrent:
		return "current"
	case AmenityFormatLegacyList:
		return "legacy_list"
	case AmenityFormatLegacyMap:
		return "legacy_map"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// RawAmenities is the amenities field of a location as found in the database.
// The format is decided once while decoding.
type RawAmenities struct {
	Format AmenityFormat

	// List holds ids for AmenityFormatLegacyList.
	List []string

	// LegacyKeys keeps the stored key order for AmenityFormatLegacyMap. A nil
	// value in LegacyMap means the stored value was not vote-shaped.
	LegacyKeys []string
	LegacyMap  map[string]*AmenityStatusEntry

	// Current holds entries for AmenityFormatCurrent.
	Current LocationAmenities
}

// CurrentAmenities wraps an already normalized map.
func CurrentAmenities(m LocationAmenities) RawAmenities {
	if m == nil {
		m = LocationAmenities{}
	}
	return RawAmenities{Format: AmenityFormatCurrent, Current: m}
}

// LegacyAmenityList builds the oldest stored shape.
func LegacyAmenityList(ids ...string) RawAmenities {
	if ids == nil {
		ids = []string{}
	}
	return RawAmenities{Format: AmenityFormatLegacyList, List: ids}
}

// LegacyAmenityMap builds the intermediate stored shape, keyed by old ids.
func LegacyAmenityMap(ids ...string) RawAmenities {
	r := RawAmenities{
		Format:     AmenityFormatLegacyMap,
		LegacyKeys: make([]string, 0, len(ids)),
		LegacyMap:  make(map[string]*AmenityStatusEntry, len(ids)),
	}
	for _, id := range ids {
		if _, ok := r.LegacyMap[id]; ok {
			continue
		}
		r.LegacyKeys = append(r.LegacyKeys, id)
		r.LegacyMap[id] = nil
	}
	return r
}

func (r RawAmenities) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch r.Format {
	case AmenityFormatLegacyList:
		list := r.List
		if list == nil {
			list = []string{}
		}
		return bson.MarshalValue(list)
	case AmenityFormatLegacyMap:
		doc := bson.D{}
		for _, k := range r.LegacyKeys {
			if entry := r.LegacyMap[k]; entry != nil {
				doc = append(doc, bson.E{Key: k, Value: *entry})
			} else {
				doc = append(doc, bson.E{Key: k, Value: true})
			}
		}
		return bson.MarshalValue(doc)
	default:
		current := r.Current
		if current == nil {
			current = LocationAmenities{}
		}
		return bson.MarshalValue(current)
	}
}

func (r *RawAmenities) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*r = RawAmenities{}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		r.Format = AmenityFormatCurrent
		r.Current = LocationAmenities{}
		return nil

	case bsontype.Array:
		var ids []string
		if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&ids); err != nil {
			return err
		}
		if ids == nil {
			ids = []string{}
		}
		r.Format = AmenityFormatLegacyList
		r.List = ids
		return nil

	case bsontype.EmbeddedDocument:
		doc := bson.Raw(data)
		elements, err := doc.Elements()
		if err != nil {
			return err
		}

		voteShaped := true
		for _, e := range elements {
			if !isVoteShaped(e.Value()) {
				voteShaped = false
				break
			}
		}

		if voteShaped {
			current := LocationAmenities{}
			if err := bson.Unmarshal(data, &current); err != nil {
				return err
			}
			r.Format = AmenityFormatCurrent
			r.Current = current
			return nil
		}

		r.Format = AmenityFormatLegacyMap
		r.LegacyKeys = make([]string, 0, len(elements))
		r.LegacyMap = make(map[string]*AmenityStatusEntry, len(elements))
		for _, e := range elements {
			key := e.Key()
			r.LegacyKeys = append(r.LegacyKeys, key)
			if isVoteShaped(e.Value()) {
				var entry AmenityStatusEntry
				if err := e.Value().Unmarshal(&entry); err != nil {
					return err
				}
				r.LegacyMap[key] = &entry
			} else {
				r.LegacyMap[key] = nil
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported amenities type: %s", t)
	}
}

func isVoteShaped(v bson.RawValue) bool {
	if v.Type != bsontype.EmbeddedDocument {
		return false
	}
	_, err := v.Document().LookupErr("votes")
	return err == nil
}
