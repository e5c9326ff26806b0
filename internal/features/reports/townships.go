package reports

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the map viewport limit around the metro area.
type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// Township is a named sub-region with an approximate centroid.
type Township struct {
	Name     string `json:"name"`
	Centroid LatLng `json:"centroid"`
}

var (
	MapCenter = LatLng{Lat: 16.8661, Lng: 96.1951}
	MapBounds = Bounds{
		SouthWest: LatLng{Lat: 16.65, Lng: 95.95},
		NorthEast: LatLng{Lat: 17.1, Lng: 96.4},
	}
)

// Townships is the fixed list offered by the add-report form.
var Townships = []Township{
	{"Dagon", LatLng{16.8281, 96.1735}},
	{"Botataung", LatLng{16.7711, 96.1913}},
	{"Pazundaung", LatLng{16.7826, 96.1807}},
	{"Kyauktada", LatLng{16.7775, 96.1608}},
	{"Lanmadaw", LatLng{16.7839, 96.1477}},
	{"Latha", LatLng{16.7753, 96.1558}},
	{"Tamwe", LatLng{16.8167, 96.1917}},
	{"Bahan", LatLng{16.8167, 96.1583}},
	{"Sanchaung", LatLng{16.8000, 96.1333}},
	{"Kamayut", LatLng{16.8208, 96.1347}},
	{"Hlaing", LatLng{16.8458, 96.1194}},
	{"Mayangone", LatLng{16.8625, 96.1389}},
	{"Insein", LatLng{16.8994, 96.1003}},
	{"Mingaladon", LatLng{16.9333, 96.0833}},
	{"Thaketa", LatLng{16.7792, 96.2208}},
	{"Dawbon", LatLng{16.8042, 96.2167}},
	{"North Okkalapa", LatLng{16.8542, 96.1917}},
	{"South Okkalapa", LatLng{16.8250, 96.2083}},
	{"Thingangyun", LatLng{16.8417, 96.1833}},
	{"Yankin", LatLng{16.8333, 96.1667}},
}

// LookupTownship finds a township by exact name.
func LookupTownship(name string) (Township, bool) {
	for _, t := range Townships {
		if t.Name == name {
			return t, true
		}
	}
	return Township{}, false
}
