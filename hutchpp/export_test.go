package hutchpp

// Test-Bridge (White-Box) for Private Kernels
//
// Exposes the unexported probe and orthonormalization kernels to
// hutchpp_test only, so their numerical contracts (orthonormal columns,
// span preservation, normal moments) can be verified without widening the
// production API.

var (
	// ExportedGaussian exposes gaussian for white-box tests.
	ExportedGaussian = gaussian

	// ExportedOrthonormalize exposes orthonormalize for white-box tests.
	ExportedOrthonormalize = orthonormalize
)
