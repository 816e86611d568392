package aggregate

import (
    "bytes"
    "encoding/json"
    "log"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// StateDetails is the per-state metadata block shown on destination
// cards. StartingPrice is nil until the first package lands in the
// state; it is always set by the time a group is transmitted.
type StateDetails struct {
    StateName     string   `json:"stateName"`
    Description   string   `json:"description"`
    Country       string   `json:"country"`
    Type          string   `json:"type"`
    StateImage    string   `json:"stateImage"`
    StartingPrice *float64 `json:"startingPrice"`
}

// StateGroup holds one state's metadata and its city-grouped packages.
type StateGroup struct {
    StateDetails StateDetails `json:"stateDetails"`
    Cities       *CityMap     `json:"cities"`
    CityCount    int          `json:"cityCount"`
}

// CityMap maps city name to its package summaries, iterating in the
// order cities were first seen. Plain maps lose that order in JSON.
type CityMap struct {
    keys   []string
    groups map[string][]models.PackageSummary
}

func NewCityMap() *CityMap {
    return &CityMap{groups: make(map[string][]models.PackageSummary)}
}

// Append adds a summary to the city's list, registering the city on
// first encounter.
func (m *CityMap) Append(city string, summary models.PackageSummary) {
    if _, seen := m.groups[city]; !seen {
        m.keys = append(m.keys, city)
    }
    m.groups[city] = append(m.groups[city], summary)
}

// Len is the number of distinct cities.
func (m *CityMap) Len() int {
    return len(m.keys)
}

// Keys returns city names in insertion order.
func (m *CityMap) Keys() []string {
    return m.keys
}

// Get returns the summaries recorded for a city.
func (m *CityMap) Get(city string) []models.PackageSummary {
    return m.groups[city]
}

func (m *CityMap) MarshalJSON() ([]byte, error) {
    return marshalOrdered(m.keys, func(key string) interface{} {
        return m.groups[key]
    })
}

// StateGroupMap maps state name to its group, iterating in the order
// states were first seen.
type StateGroupMap struct {
    keys   []string
    groups map[string]*StateGroup
}

func NewStateGroupMap() *StateGroupMap {
    return &StateGroupMap{groups: make(map[string]*StateGroup)}
}

// Len is the number of states in the map.
func (m *StateGroupMap) Len() int {
    return len(m.keys)
}

// Keys returns state names in insertion order.
func (m *StateGroupMap) Keys() []string {
    return m.keys
}

// Get returns the group for a state, or nil.
func (m *StateGroupMap) Get(state string) *StateGroup {
    return m.groups[state]
}

func (m *StateGroupMap) put(state string, group *StateGroup) {
    if _, seen := m.groups[state]; !seen {
        m.keys = append(m.keys, state)
    }
    m.groups[state] = group
}

func (m *StateGroupMap) MarshalJSON() ([]byte, error) {
    return marshalOrdered(m.keys, func(key string) interface{} {
        return m.groups[key]
    })
}

// marshalOrdered writes a JSON object whose members appear in key
// order, which encoding/json does not do for plain maps.
func marshalOrdered(keys []string, value func(string) interface{}) ([]byte, error) {
    var buf bytes.Buffer
    buf.WriteByte('{')
    for i, key := range keys {
        if i > 0 {
            buf.WriteByte(',')
        }
        name, err := json.Marshal(key)
        if err != nil {
            return nil, err
        }
        buf.Write(name)
        buf.WriteByte(':')
        member, err := json.Marshal(value(key))
        if err != nil {
            return nil, err
        }
        buf.Write(member)
    }
    buf.WriteByte('}')
    return buf.Bytes(), nil
}

// GroupByState folds one bucket's packages into a state → city tree.
// Packages whose address did not resolve cannot be placed on the tree
// and are skipped. State details are seeded from the first address seen
// for the state; its startingPrice is only a seed and is lowered to the
// cheapest package price placed under the state. An empty bucket yields
// an empty map.
func GroupByState(bucket []models.ResolvedPackage) *StateGroupMap {
    groups := NewStateGroupMap()
    for _, rp := range bucket {
        if rp.Address == nil {
            log.Printf("GroupByState: skipping package %s: address reference did not resolve", rp.ID.Hex())
            continue
        }
        state := rp.Address.State
        group := groups.Get(state)
        if group == nil {
            group = &StateGroup{
                StateDetails: newStateDetails(rp.Address),
                Cities:       NewCityMap(),
            }
            groups.put(state, group)
        }
        group.Cities.Append(rp.Address.City, rp.Summary())
        lowerStartingPrice(&group.StateDetails, rp.Price)
    }
    for _, state := range groups.Keys() {
        group := groups.Get(state)
        group.CityCount = group.Cities.Len()
    }
    return groups
}

func newStateDetails(address *models.Address) StateDetails {
    details := StateDetails{
        StateName:   address.State,
        Description: address.Description,
        Country:     address.Country,
        Type:        address.Type,
        StateImage:  address.StateImage,
    }
    if address.StartingPrice > 0 {
        seed := address.StartingPrice
        details.StartingPrice = &seed
    }
    return details
}

func lowerStartingPrice(details *StateDetails, price float64) {
    if details.StartingPrice == nil || price < *details.StartingPrice {
        p := price
        details.StartingPrice = &p
    }
}
