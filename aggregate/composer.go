package aggregate

import (
    "strings"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// CategoryData is the full by-category payload: bucket key → state
// tree, with buckets emitted in the configured presentation order.
type CategoryData struct {
    keys    []string
    buckets map[string]*StateGroupMap
}

func NewCategoryData() *CategoryData {
    return &CategoryData{buckets: make(map[string]*StateGroupMap)}
}

// Keys returns bucket keys in presentation order.
func (d *CategoryData) Keys() []string {
    return d.keys
}

// Get returns the state tree for a bucket, or nil.
func (d *CategoryData) Get(key string) *StateGroupMap {
    return d.buckets[key]
}

func (d *CategoryData) put(key string, groups *StateGroupMap) {
    if _, seen := d.buckets[key]; !seen {
        d.keys = append(d.keys, key)
    }
    d.buckets[key] = groups
}

func (d *CategoryData) MarshalJSON() ([]byte, error) {
    return marshalOrdered(d.keys, func(key string) interface{} {
        return d.buckets[key]
    })
}

// Compose classifies the resolved packages and groups every bucket by
// state. The result always carries every configured bucket key; a theme
// with no packages comes through as an empty object, not an omission.
func Compose(resolved []models.ResolvedPackage, cfg CategoryConfig) *CategoryData {
    buckets := Classify(resolved, cfg)
    data := NewCategoryData()
    for _, key := range cfg.BucketKeys() {
        data.put(key, GroupByState(buckets[key]))
    }
    return data
}

// TopDestinations is the restricted variant: only packages tagged
// "top destination", grouped by state.
func TopDestinations(resolved []models.ResolvedPackage, cfg CategoryConfig) *StateGroupMap {
    return GroupByState(filterByTag(resolved, cfg.TopTag))
}

// StateView is the single-state payload: the state's details plus its
// city-grouped packages, no cross-state tree.
type StateView struct {
    StateDetails StateDetails `json:"stateDetails"`
    Cities       *CityMap     `json:"cities"`
}

// CitiesByState builds the view for one state. The state must exist in
// the address collection; the second return is false when it does not.
// Name comparison is case-insensitive. A known state with no packages
// is a valid view with empty cities.
func CitiesByState(resolved []models.ResolvedPackage, addresses []models.Address, stateName string) (*StateView, bool) {
    var seed *models.Address
    for i := range addresses {
        if strings.EqualFold(addresses[i].State, stateName) {
            seed = &addresses[i]
            break
        }
    }
    if seed == nil {
        return nil, false
    }

    view := &StateView{
        StateDetails: newStateDetails(seed),
        Cities:       NewCityMap(),
    }
    for _, rp := range resolved {
        if rp.Address == nil || !strings.EqualFold(rp.Address.State, stateName) {
            continue
        }
        view.Cities.Append(rp.Address.City, rp.Summary())
        lowerStartingPrice(&view.StateDetails, rp.Price)
    }
    return view, true
}

// ThemeDetails is the metadata block of the single-theme view.
type ThemeDetails struct {
    ID                string `json:"id"`
    Name              string `json:"name"`
    Description       string `json:"description"`
    ThemeImage        string `json:"themeImage"`
    ValidPackageCount int    `json:"validPackageCount"`
}

// ThemeView is the single-theme payload: theme metadata plus the state
// tree of its packages.
type ThemeView struct {
    ThemeDetails ThemeDetails   `json:"themeDetails"`
    States       *StateGroupMap `json:"states"`
}

// StateCityByTheme builds the view for one theme. Only packages whose
// address resolves count as valid and appear on the tree.
func StateCityByTheme(resolved []models.ResolvedPackage, theme models.Theme) *ThemeView {
    matched := filterByTheme(resolved, theme.Name)
    valid := 0
    for _, rp := range matched {
        if rp.Address != nil {
            valid++
        }
    }
    return &ThemeView{
        ThemeDetails: ThemeDetails{
            ID:                theme.ID.Hex(),
            Name:              theme.Name,
            Description:       theme.Description,
            ThemeImage:        theme.ThemeImage,
            ValidPackageCount: valid,
        },
        States: GroupByState(matched),
    }
}

// ThemeInfo is one entry of the theme listing.
type ThemeInfo struct {
    ID          string `json:"id"`
    ThemeName   string `json:"themename"`
    Description string `json:"description"`
    ThemeImage  string `json:"themeImage"`
    PackageCount int   `json:"packageCount"`
}

// ThemeInfoMap maps theme name to its listing entry, iterating in the
// order themes were supplied.
type ThemeInfoMap struct {
    keys  []string
    infos map[string]ThemeInfo
}

// Keys returns theme names in supplied order.
func (m *ThemeInfoMap) Keys() []string {
    return m.keys
}

// Get returns the entry for a theme name.
func (m *ThemeInfoMap) Get(name string) (ThemeInfo, bool) {
    info, ok := m.infos[name]
    return info, ok
}

func (m *ThemeInfoMap) MarshalJSON() ([]byte, error) {
    return marshalOrdered(m.keys, func(key string) interface{} {
        return m.infos[key]
    })
}

// ThemeCounts builds the theme listing. A package counts toward its
// theme only when both its theme and its address resolve.
func ThemeCounts(resolved []models.ResolvedPackage, themes []models.Theme) *ThemeInfoMap {
    listing := &ThemeInfoMap{infos: make(map[string]ThemeInfo, len(themes))}
    for _, theme := range themes {
        count := 0
        for _, rp := range filterByTheme(resolved, theme.Name) {
            if rp.Address != nil {
                count++
            }
        }
        if _, seen := listing.infos[theme.Name]; !seen {
            listing.keys = append(listing.keys, theme.Name)
        }
        listing.infos[theme.Name] = ThemeInfo{
            ID:           theme.ID.Hex(),
            ThemeName:    theme.Name,
            Description:  theme.Description,
            ThemeImage:   theme.ThemeImage,
            PackageCount: count,
        }
    }
    return listing
}
