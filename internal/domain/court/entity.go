package court

// Court is static reference data; the application never creates or mutates
// courts, it only reads them for listings and reservation validation.
type Court struct {
	ID   int64
	Name string
}
