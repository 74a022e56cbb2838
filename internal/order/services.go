package order

// ServiceSelection is one chosen add-on: the service name plus the option
// string the customer picked. For flat-price services Option is the display
// price itself ("1500 грн"); for services with sub-options it is the full
// option label ("Клоун - Великий - 1500 грн").
type ServiceSelection struct {
	Service string `json:"service"`
	Option  string `json:"option"`
}

// Services holds the add-on selections in pick order. At most one option per
// service: re-picking a service replaces its previous option.
type Services struct {
	Selected []ServiceSelection `json:"selected"`
}

// Set records an option for a service, replacing any earlier pick of the same
// service in place.
func (s *Services) Set(service, option string) {
	for i, sel := range s.Selected {
		if sel.Service == service {
			s.Selected[i].Option = option
			return
		}
	}
	s.Selected = append(s.Selected, ServiceSelection{Service: service, Option: option})
}

// Remove drops the selection for a service. Unknown services are a no-op.
func (s *Services) Remove(service string) {
	kept := s.Selected[:0]
	for _, sel := range s.Selected {
		if sel.Service != service {
			kept = append(kept, sel)
		}
	}
	s.Selected = kept
}

// Get returns the chosen option for a service.
func (s *Services) Get(service string) (string, bool) {
	for _, sel := range s.Selected {
		if sel.Service == service {
			return sel.Option, true
		}
	}
	return "", false
}

// Len reports the number of selected add-ons.
func (s *Services) Len() int {
	return len(s.Selected)
}
