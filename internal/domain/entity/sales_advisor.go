package entity

// SalesAdvisor asesor de ventas al que se asignan los prospectos.
type SalesAdvisor struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
	Lifecycle
}
