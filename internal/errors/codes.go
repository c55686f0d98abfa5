package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to localized messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY"
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Listings (LISTING_) ====================
	ListingNotFound       = "LISTING_NOT_FOUND"
	ListingSlugExists     = "LISTING_SLUG_EXISTS"     // identical title/location for the same owner
	ListingDuplicateImage = "LISTING_DUPLICATE_IMAGE" // photo already registered on another listing
	ListingNotActive      = "LISTING_NOT_ACTIVE"
	ListingPhotoLimit     = "LISTING_PHOTO_LIMIT"

	// ==================== Geography (GEO_) ====================
	GeoCountyNotFound       = "GEO_COUNTY_NOT_FOUND"
	GeoCityNotFound         = "GEO_CITY_NOT_FOUND"
	GeoNeighborhoodNotFound = "GEO_NEIGHBORHOOD_NOT_FOUND"
	GeoCityNotInCounty      = "GEO_CITY_NOT_IN_COUNTY"
	GeoNeighborhoodNotInCity = "GEO_NEIGHBORHOOD_NOT_IN_CITY"

	// ==================== Categories / Tags (CATEGORY_ / TAG_) ====================
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	CategoryInactive = "CATEGORY_INACTIVE"
	TagNotFound      = "TAG_NOT_FOUND"

	// ==================== Reports (REPORT_) ====================
	ReportThrottled = "REPORT_THROTTLED" // same IP, same listing, under 24h

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
