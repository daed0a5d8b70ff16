// Package location holds the static registry of monitored districts and cities.
package location

// Profile is a named district or city with fixed coordinates.
// Profiles are defined at process start and never mutated.
type Profile struct {
	Name string  `json:"name"`
	Lat  float64 `json:"latitude"`
	Lon  float64 `json:"longitude"`
	City string  `json:"city"`
}

// registry lists the monitored Azerbaijani locations: the Baku districts
// plus the other major cities.
var registry = []Profile{
	// Baku districts
	{Name: "Bakı - Nəsimi", Lat: 40.3947, Lon: 49.8822, City: "Bakı"},
	{Name: "Bakı - Nərimanov", Lat: 40.4015, Lon: 49.8539, City: "Bakı"},
	{Name: "Bakı - Səbail", Lat: 40.3656, Lon: 49.8354, City: "Bakı"},
	{Name: "Bakı - Yasamal", Lat: 40.3917, Lon: 49.8064, City: "Bakı"},
	{Name: "Bakı - Binəqədi", Lat: 40.4550, Lon: 49.8203, City: "Bakı"},
	{Name: "Bakı - Xətai", Lat: 40.3800, Lon: 49.8100, City: "Bakı"},
	{Name: "Bakı - Suraxanı", Lat: 40.4200, Lon: 50.0100, City: "Bakı"},
	{Name: "Bakı - Sabunçu", Lat: 40.4400, Lon: 49.9500, City: "Bakı"},
	{Name: "Bakı - Xəzər", Lat: 40.4700, Lon: 50.0300, City: "Bakı"},
	{Name: "Bakı - Qaradağ", Lat: 40.3500, Lon: 49.7000, City: "Bakı"},

	// Other major cities
	{Name: "Gəncə", Lat: 40.6828, Lon: 46.3606, City: "Gəncə"},
	{Name: "Sumqayıt", Lat: 40.5897, Lon: 49.6686, City: "Sumqayıt"},
	{Name: "Mingəçevir", Lat: 40.7703, Lon: 47.0497, City: "Mingəçevir"},
	{Name: "Şirvan", Lat: 39.9372, Lon: 48.9208, City: "Şirvan"},
	{Name: "Lənkəran", Lat: 38.7542, Lon: 48.8508, City: "Lənkəran"},
	{Name: "Naxçıvan", Lat: 39.2090, Lon: 45.4120, City: "Naxçıvan"},
	{Name: "Şəki", Lat: 41.1919, Lon: 47.1706, City: "Şəki"},
}

// All returns every registered location.
func All() []Profile {
	out := make([]Profile, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the profile for a district name.
func Lookup(name string) (Profile, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the registered district names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}
