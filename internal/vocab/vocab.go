// Package vocab holds the fixed item status and shipping carrier
// vocabularies. Each entry pairs a value with its display color so the
// color can never drift from the status it belongs to. The tables are
// process-wide constants, never derived from stored data.
package vocab

// StatusOption is one entry of the ordered status vocabulary.
type StatusOption struct {
	Status string `json:"status"`
	Color  string `json:"color"`
}

// CarrierOption is one entry of the ordered carrier vocabulary.
type CarrierOption struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// statuses is the full procurement lifecycle, in presentation order:
// selection, quoting, ordering, shipping, installation, exceptions.
var statuses = []StatusOption{
	{Status: "TO BE SELECTED", Color: "#9CA3AF"},
	{Status: "RESEARCHING", Color: "#6B7280"},
	{Status: "PICKED", Color: "#3B82F6"},
	{Status: "ORDER SAMPLES", Color: "#8B5CF6"},
	{Status: "SAMPLES ARRIVED", Color: "#A78BFA"},
	{Status: "ASK NEIL", Color: "#F59E0B"},
	{Status: "ASK CHARLENE", Color: "#FBBF24"},
	{Status: "ASK JALA", Color: "#FCD34D"},
	{Status: "GET QUOTE", Color: "#6366F1"},
	{Status: "WAITING ON QT", Color: "#818CF8"},
	{Status: "READY FOR PRESENTATION", Color: "#EC4899"},
	{Status: "APPROVED", Color: "#059669"},
	{Status: "ORDERED", Color: "#10B981"},
	{Status: "SHIPPED", Color: "#14B8A6"},
	{Status: "IN TRANSIT", Color: "#06B6D4"},
	{Status: "OUT FOR DELIVERY", Color: "#0EA5E9"},
	{Status: "DELIVERED TO RECEIVER", Color: "#38BDF8"},
	{Status: "DELIVERED TO JOB SITE", Color: "#7DD3FC"},
	{Status: "RECEIVED", Color: "#22C55E"},
	{Status: "READY FOR INSTALL", Color: "#84CC16"},
	{Status: "INSTALLING", Color: "#A3E635"},
	{Status: "INSTALLED", Color: "#15803D"},
	{Status: "BACKORDERED", Color: "#F97316"},
	{Status: "ON HOLD", Color: "#FB923C"},
	{Status: "DAMAGED", Color: "#EF4444"},
	{Status: "RETURNED", Color: "#DC2626"},
	{Status: "CANCELLED", Color: "#991B1B"},
}

// carriers in presentation order: national carriers first, then the
// white-glove/receiving companies the studio works with.
var carriers = []CarrierOption{
	{Name: "FedEx", Color: "#4D148C"},
	{Name: "UPS", Color: "#351C15"},
	{Name: "USPS", Color: "#004B87"},
	{Name: "DHL", Color: "#FFCC00"},
	{Name: "Brooks", Color: "#1E3A8A"},
	{Name: "Zenith", Color: "#0F766E"},
	{Name: "Sunbelt", Color: "#B45309"},
	{Name: "Metropolitan Warehouse", Color: "#7C3AED"},
	{Name: "Other", Color: "#6B7280"},
}

var statusColors = buildStatusIndex()
var carrierColors = buildCarrierIndex()

func buildStatusIndex() map[string]string {
	m := make(map[string]string, len(statuses))
	for _, s := range statuses {
		m[s.Status] = s.Color
	}
	return m
}

func buildCarrierIndex() map[string]string {
	m := make(map[string]string, len(carriers))
	for _, c := range carriers {
		m[c.Name] = c.Color
	}
	return m
}

// Statuses returns the ordered status vocabulary. The caller gets a
// copy; the underlying table is immutable.
func Statuses() []StatusOption {
	out := make([]StatusOption, len(statuses))
	copy(out, statuses)
	return out
}

// Carriers returns the ordered carrier vocabulary as a copy.
func Carriers() []CarrierOption {
	out := make([]CarrierOption, len(carriers))
	copy(out, carriers)
	return out
}

// ValidStatus reports whether s is blank or a known status. Unknown
// values are still stored, only flagged in the logs.
func ValidStatus(s string) bool {
	if s == "" {
		return true
	}
	_, ok := statusColors[s]
	return ok
}

// ValidCarrier reports whether s is blank or a known carrier.
func ValidCarrier(s string) bool {
	if s == "" {
		return true
	}
	_, ok := carrierColors[s]
	return ok
}

// StatusColor returns the display color for a status, or "" for
// unknown/blank values.
func StatusColor(s string) string {
	return statusColors[s]
}

// CarrierColor returns the display color for a carrier, or "" for
// unknown/blank values.
func CarrierColor(s string) string {
	return carrierColors[s]
}
