package registry

import "errors"

// Errors returned by Registry operations. A call that fails with any of
// these leaves the registry unchanged.
var (
	ErrNotFound     = errors.New("asset not found")
	ErrNotForSale   = errors.New("asset is not for sale")
	ErrAlreadyOwner = errors.New("you already own this asset")
	ErrNotOwner     = errors.New("only the owner can modify the asset")
	ErrNotAdmin     = errors.New("only an admin can delete all assets")
)
