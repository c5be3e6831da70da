package amenity

import (
	"fmt"
	"sort"
	"sync"

	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/utils"
)

// defaultCatalog is the English catalog. Names are localized on request.
var defaultCatalog = []schema.Amenity{
	{ID: "toilet_paper", Name: "Toilet Paper", Icon: "toilet-paper", Category: schema.AmenityCategoryEssentials, Priority: 1},
	{ID: "hand_soap", Name: "Hand Soap", Icon: "soap", Category: schema.AmenityCategoryEssentials, Priority: 2},
	{ID: "wheelchair_accessible", Name: "Wheelchair Accessible", Icon: "wheelchair", Category: schema.AmenityCategoryAccessibility, Priority: 3},
	{ID: "baby_changing_station", Name: "Baby Changing Station", Icon: "baby", Category: schema.AmenityCategoryFacilities, Priority: 4},
	{ID: "all_gender", Name: "All-Gender Restroom", Icon: "all-gender", Category: schema.AmenityCategoryAccessibility, Priority: 5},
	{ID: "free", Name: "Free to Use", Icon: "free", Category: schema.AmenityCategoryAccess, Priority: 6},
	{ID: "no_key_required", Name: "No Key Required", Icon: "unlock", Category: schema.AmenityCategoryAccess, Priority: 7},
	{ID: "paper_towels", Name: "Paper Towels", Icon: "paper-towel", Category: schema.AmenityCategoryEssentials, Priority: 8},
	{ID: "hand_dryer", Name: "Hand Dryer", Icon: "hand-dryer", Category: schema.AmenityCategoryFacilities, Priority: 9},
	{ID: "sanitary_products", Name: "Sanitary Products", Icon: "sanitary", Category: schema.AmenityCategoryEssentials, Priority: 10},
	{ID: "hot_water", Name: "Hot Water", Icon: "water", Category: schema.AmenityCategoryFacilities, Priority: 11},
	{ID: "mirror", Name: "Mirror", Icon: "mirror", Category: schema.AmenityCategoryFacilities, Priority: 12},
}

var catalogIndex = func() map[string]schema.Amenity {
	m := make(map[string]schema.Amenity, len(defaultCatalog))
	for _, a := range defaultCatalog {
		m[a.ID] = a
	}
	return m
}()

var (
	localizedMu      sync.RWMutex
	localizedCatalog = map[string][]schema.Amenity{}
)

// Lookup returns the catalog entry of an amenity id.
func Lookup(id string) (schema.Amenity, bool) {
	a, ok := catalogIndex[id]
	return a, ok
}

// Known tells whether id is in the catalog.
func Known(id string) bool {
	_, ok := catalogIndex[id]
	return ok
}

// ListCatalog returns the catalog in display order with names in lang.
func ListCatalog(lang string) []schema.Amenity {
	key := utils.NormalizeLanguage(lang)

	localizedMu.RLock()
	list, ok := localizedCatalog[key]
	localizedMu.RUnlock()
	if ok {
		return append([]schema.Amenity(nil), list...)
	}

	localizer := utils.NewLocalizer(lang, utils.DefaultLanguage)
	list = make([]schema.Amenity, len(defaultCatalog))
	for i, a := range defaultCatalog {
		a.Name = utils.Localize(localizer, fmt.Sprintf("amenities.%s.name", a.ID), a.Name)
		list[i] = a
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority < list[j].Priority
	})

	localizedMu.Lock()
	localizedCatalog[key] = list
	localizedMu.Unlock()

	return append([]schema.Amenity(nil), list...)
}

// ResetCatalogCache drops localized catalogs, used after the i18n bundle is reloaded.
func ResetCatalogCache() {
	localizedMu.Lock()
	localizedCatalog = map[string][]schema.Amenity{}
	localizedMu.Unlock()
}
