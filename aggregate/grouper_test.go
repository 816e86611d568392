package aggregate

import (
    "encoding/json"
    "strings"
    "testing"

    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

func keralaAddress() *models.Address {
    return &models.Address{
        ID:            primitive.NewObjectID(),
        Country:       "India",
        State:         "Kerala",
        City:          "Alleppey",
        Description:   "Backwaters and houseboats",
        Type:          models.AddressTypeDomestic,
        StartingPrice: 4000,
    }
}

func placedPackage(name string, price float64, address *models.Address) models.ResolvedPackage {
    return models.ResolvedPackage{
        Package: models.Package{
            ID:    primitive.NewObjectID(),
            Name:  name,
            Price: price,
        },
        Address: address,
    }
}

// The scenario the storefront's trending section is built on: two
// packages in one city, the cheaper package price beating the
// address's nominal starting price.
func TestGroupByStateMinimumPrice(t *testing.T) {
    address := keralaAddress()
    bucket := []models.ResolvedPackage{
        placedPackage("Package A", 3500, address),
        placedPackage("Package B", 5000, address),
    }

    groups := GroupByState(bucket)

    kerala := groups.Get("Kerala")
    if kerala == nil {
        t.Fatal("expected Kerala state group")
    }
    if kerala.StateDetails.StartingPrice == nil {
        t.Fatal("startingPrice not set")
    }
    if got := *kerala.StateDetails.StartingPrice; got != 3500 {
        t.Errorf("startingPrice = %v, want 3500", got)
    }
    if got := len(kerala.Cities.Get("Alleppey")); got != 2 {
        t.Errorf("Alleppey has %d packages, want 2", got)
    }
    if kerala.CityCount != 1 {
        t.Errorf("cityCount = %d, want 1", kerala.CityCount)
    }
}

func TestGroupByStateSeedPriceKeptWhenLower(t *testing.T) {
    address := keralaAddress() // nominal starting price 4000
    bucket := []models.ResolvedPackage{
        placedPackage("Package A", 4500, address),
    }

    groups := GroupByState(bucket)
    kerala := groups.Get("Kerala")
    if kerala == nil || kerala.StateDetails.StartingPrice == nil {
        t.Fatal("expected priced Kerala group")
    }
    if got := *kerala.StateDetails.StartingPrice; got != 4000 {
        t.Errorf("startingPrice = %v, want the address seed 4000", got)
    }
}

func TestGroupByStateSkipsDanglingAddress(t *testing.T) {
    address := keralaAddress()
    dangling := models.ResolvedPackage{
        Package: models.Package{ID: primitive.NewObjectID(), Name: "Orphan", Price: 100},
    }
    bucket := []models.ResolvedPackage{
        dangling,
        placedPackage("Placed", 2000, address),
    }

    groups := GroupByState(bucket)

    if groups.Len() != 1 {
        t.Fatalf("expected 1 state group, got %d", groups.Len())
    }
    kerala := groups.Get("Kerala")
    if got := len(kerala.Cities.Get("Alleppey")); got != 1 {
        t.Errorf("expected only the placed package, got %d", got)
    }
    // The orphan's cheap price must not leak into the aggregate
    if got := *kerala.StateDetails.StartingPrice; got != 2000 {
        t.Errorf("startingPrice = %v, want 2000", got)
    }
}

func TestGroupByStateEmptyBucket(t *testing.T) {
    groups := GroupByState(nil)
    if groups.Len() != 0 {
        t.Errorf("expected empty state map, got %d entries", groups.Len())
    }

    raw, err := json.Marshal(groups)
    if err != nil {
        t.Fatalf("marshal failed: %v", err)
    }
    if string(raw) != "{}" {
        t.Errorf("empty group map marshals as %s, want {}", raw)
    }
}

func TestGroupByStateInsertionOrder(t *testing.T) {
    goa := &models.Address{ID: primitive.NewObjectID(), State: "Goa", City: "Panaji", StartingPrice: 3000}
    kerala := keralaAddress()
    himachal := &models.Address{ID: primitive.NewObjectID(), State: "Himachal Pradesh", City: "Manali", StartingPrice: 2500}

    bucket := []models.ResolvedPackage{
        placedPackage("one", 1000, goa),
        placedPackage("two", 1000, kerala),
        placedPackage("three", 1000, himachal),
        placedPackage("four", 1000, goa), // Goa again, must not move
    }

    groups := GroupByState(bucket)

    want := []string{"Goa", "Kerala", "Himachal Pradesh"}
    got := groups.Keys()
    if len(got) != len(want) {
        t.Fatalf("expected %d states, got %d", len(want), len(got))
    }
    for i := range want {
        if got[i] != want[i] {
            t.Errorf("state order[%d] = %q, want %q", i, got[i], want[i])
        }
    }

    // JSON must come out in the same order
    raw, err := json.Marshal(groups)
    if err != nil {
        t.Fatalf("marshal failed: %v", err)
    }
    text := string(raw)
    goaIdx := strings.Index(text, `"Goa"`)
    keralaIdx := strings.Index(text, `"Kerala"`)
    himachalIdx := strings.Index(text, `"Himachal Pradesh"`)
    if !(goaIdx < keralaIdx && keralaIdx < himachalIdx) {
        t.Errorf("marshalled state order wrong: %s", text)
    }
}

func TestGroupByStateCityCount(t *testing.T) {
    alleppey := keralaAddress()
    kochi := &models.Address{
        ID:            primitive.NewObjectID(),
        State:         "Kerala",
        City:          "Kochi",
        StartingPrice: 3800,
    }

    bucket := []models.ResolvedPackage{
        placedPackage("a", 4200, alleppey),
        placedPackage("b", 3900, kochi),
        placedPackage("c", 4100, alleppey),
    }

    groups := GroupByState(bucket)
    kerala := groups.Get("Kerala")
    if kerala == nil {
        t.Fatal("expected Kerala group")
    }
    if kerala.CityCount != 2 {
        t.Errorf("cityCount = %d, want 2", kerala.CityCount)
    }
    if got := kerala.Cities.Len(); got != kerala.CityCount {
        t.Errorf("cityCount %d disagrees with distinct cities %d", kerala.CityCount, got)
    }

    want := []string{"Alleppey", "Kochi"}
    for i, city := range kerala.Cities.Keys() {
        if city != want[i] {
            t.Errorf("city order[%d] = %q, want %q", i, city, want[i])
        }
    }
}

func TestGroupByStateZeroSeedPriceTreatedAsUnset(t *testing.T) {
    address := keralaAddress()
    address.StartingPrice = 0
    bucket := []models.ResolvedPackage{
        placedPackage("only", 6000, address),
    }

    groups := GroupByState(bucket)
    kerala := groups.Get("Kerala")
    if kerala.StateDetails.StartingPrice == nil {
        t.Fatal("startingPrice should be set from the package price")
    }
    if got := *kerala.StateDetails.StartingPrice; got != 6000 {
        t.Errorf("startingPrice = %v, want 6000", got)
    }
}
