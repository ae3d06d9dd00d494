package dashboard

// DefaultTelescope is the feed selected when the page first loads.
const DefaultTelescope = "EIT 171"

const sohoRealtime = "https://soho.nascom.nasa.gov/data/realtime/"

// Telescope is a live solar image feed.
type Telescope struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// telescopes lists each selectable feed with its latest SOHO/SDO image, in display order.
var telescopes = []Telescope{
	{"EIT 171", sohoRealtime + "eit_171/1024/latest.jpg"},
	{"EIT 195", sohoRealtime + "eit_195/1024/latest.jpg"},
	{"EIT 284", sohoRealtime + "eit_284/1024/latest.jpg"},
	{"EIT 304", sohoRealtime + "eit_304/1024/latest.jpg"},
	{"SDO/HMI Continuum", sohoRealtime + "hmi_igr/1024/latest.jpg"},
	{"SDO/HMI Magnetogram", sohoRealtime + "hmi_mag/1024/latest.jpg"},
	{"LASCO C2", sohoRealtime + "c2/1024/latest.jpg"},
	{"LASCO C3", sohoRealtime + "c3/1024/latest.jpg"},
}

// Telescopes returns the selectable feeds in display order.
func Telescopes() []Telescope {
	out := make([]Telescope, len(telescopes))
	copy(out, telescopes)
	return out
}

// TelescopeNames returns the selectable feeds in display order.
func TelescopeNames() []string {
	names := make([]string, len(telescopes))
	for i, t := range telescopes {
		names[i] = t.Name
	}
	return names
}

func telescopeURL(name string) (string, error) {
	for _, t := range telescopes {
		if t.Name == name {
			return t.URL, nil
		}
	}
	return "", &ValidationError{Field: "telescope", Value: name, Reason: "unknown telescope"}
}
