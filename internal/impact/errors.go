package impact

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrUnknownProductType is returned for a product category outside the table.
	ErrUnknownProductType = constError("unknown product type")

	// ErrUnknownFrequency is returned for a purchase frequency outside the table.
	ErrUnknownFrequency = constError("unknown frequency")

	// ErrUnknownMaterial is returned for a material variant outside the table.
	ErrUnknownMaterial = constError("unknown material")

	// ErrNonFiniteResult is returned when the quantity or any derived figure
	// is NaN or infinite.
	ErrNonFiniteResult = constError("non-finite calculation result")
)
