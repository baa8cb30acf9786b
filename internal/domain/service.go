package domain

// ServiceType represents the pricing category of a bookable service
type ServiceType string

const (
	ServicePaid   ServiceType = "paid"
	ServiceFree   ServiceType = "free"
	ServiceFriend ServiceType = "friend"
)

// Service represents a bookable service from the catalog
type Service struct {
	Name            string
	Price           float64
	DurationMinutes int
	Type            ServiceType
	Description     string
}

// IsFree returns true if the service has no price
func (s *Service) IsFree() bool {
	return s.Type != ServicePaid || s.Price == 0
}

// DefaultServices is the built-in service catalog
var DefaultServices = []Service{
	{
		Name:            "Virtual Assistant",
		Price:           40,
		DurationMinutes: 60,
		Type:            ServicePaid,
		Description:     "General admin, email management, and ad-hoc support.",
	},
	{
		Name:            "Automation Build",
		Price:           100,
		DurationMinutes: 45,
		Type:            ServicePaid,
		Description:     "Google Apps Script & Workflow automation scoping.",
	},
	{
		Name:            "Web Discovery",
		Price:           0,
		DurationMinutes: 15,
		Type:            ServiceFree,
		Description:     "Initial chat for website projects.",
	},
	{
		Name:            "Friends & Family",
		Price:           0,
		DurationMinutes: 60,
		Type:            ServiceFriend,
		Description:     "Lunch, coffee, or general chaos coordination.",
	},
}

// FindService looks up a service in the catalog by name
// Returns nil if the service is unknown
func FindService(services []Service, name string) *Service {
	for i := range services {
		if services[i].Name == name {
			return &services[i]
		}
	}
	return nil
}
