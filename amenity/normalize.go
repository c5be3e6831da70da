package amenity

import (
	"sort"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

// legacyAmenityIDs maps ids of the intermediate map format to current ids.
var legacyAmenityIDs = map[string]string{
	"accessible":     "wheelchair_accessible",
	"baby_changing":  "baby_changing_station",
	"paper":          "toilet_paper",
	"soap":           "hand_soap",
	"gender_neutral": "all_gender",
}

// CurrentID maps a legacy amenity id to its current id.
func CurrentID(id string) string {
	if current, ok := legacyAmenityIDs[id]; ok {
		return current
	}
	return id
}

// NormalizeAmenities converts any stored amenities shape into the current map.
// The result is always a fresh map.
func NormalizeAmenities(raw schema.RawAmenities) schema.LocationAmenities {
	result := schema.LocationAmenities{}

	switch raw.Format {
	case schema.AmenityFormatLegacyList:
		for _, key := range raw.List {
			id := CurrentID(key)
			if _, ok := result[id]; !ok {
				result[id] = schema.NewAmenityStatusEntry()
			}
		}

	case schema.AmenityFormatLegacyMap:
		for _, key := range raw.LegacyKeys {
			id := CurrentID(key)
			if entry := raw.LegacyMap[key]; entry != nil {
				result[id] = *entry
				continue
			}
			if _, ok := result[id]; !ok {
				result[id] = schema.NewAmenityStatusEntry()
			}
		}

	default:
		for id, entry := range raw.Current {
			result[id] = entry
		}
	}

	return result
}

// ConfirmedAmenities lists the ids in confirmed status, sorted.
func ConfirmedAmenities(amenities schema.LocationAmenities) []string {
	confirmed := []string{}
	for id, entry := range amenities {
		if entry.Status == schema.AmenityStatusConfirmed {
			confirmed = append(confirmed, id)
		}
	}
	sort.Strings(confirmed)
	return confirmed
}

// VisibleAmenities hides removed entries from the default display.
func VisibleAmenities(amenities schema.LocationAmenities) schema.LocationAmenities {
	visible := make(schema.LocationAmenities, len(amenities))
	for id, entry := range amenities {
		if entry.Status == schema.AmenityStatusRemoved {
			continue
		}
		visible[id] = entry
	}
	return visible
}
