package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts storage and infrastructure errors into user-facing
// codes and messages. Constraint violations that slip past the validation
// pipeline (concurrent writes racing the existence checks) land here, so
// the unique indexes on listing slugs and image hashes get their own
// translations instead of a generic conflict.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "A apărut o eroare pe server",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// PostgreSQL unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr)
	}

	// Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "Lipsește un câmp obligatoriu",
		}
	}

	// Check constraint violation (23514)
	if strings.Contains(errStrLower, "check constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: "Datele introduse nu sunt valide",
		}
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Conexiunea la un serviciu extern a eșuat. Încercați din nou",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// listing slug collision that raced past the pre-save check
	if strings.Contains(errLower, "idx_listings_slug") || strings.Contains(errLower, "listings_slug") {
		return ErrorInfo{
			Code:    ListingSlugExists,
			Message: "Există deja un anunț identic publicat de acest utilizator",
		}
	}

	// image hash collision, same race
	if strings.Contains(errLower, "idx_image_hashes_hash_value") || strings.Contains(errLower, "hash_value") {
		return ErrorInfo{
			Code:    ListingDuplicateImage,
			Message: "Una dintre fotografii este deja folosită într-un alt anunț",
		}
	}

	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "Adresa de email este deja folosită",
		}
	}

	// a second like for the same (user, listing) pair
	if strings.Contains(errLower, "idx_likes_user_listing") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Anunțul este deja salvat la favorite",
		}
	}

	if strings.Contains(errLower, "idx_tags_name") || strings.Contains(errLower, "tags") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Eticheta există deja",
		}
	}

	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "Datele există deja. Încercați din nou",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "Datele există deja",
	}
}

func parseForeignKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "still referenced") || strings.Contains(errLower, "is still referenced by") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "Există date asociate; ștergerea nu este posibilă",
		}
	}

	if strings.Contains(errLower, "user_id") || strings.Contains(errLower, "fk_users") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "Utilizatorul nu există",
		}
	}
	if strings.Contains(errLower, "county_id") {
		return ErrorInfo{
			Code:    GeoCountyNotFound,
			Message: "Județul selectat nu există",
		}
	}
	if strings.Contains(errLower, "city_id") {
		return ErrorInfo{
			Code:    GeoCityNotFound,
			Message: "Orașul selectat nu există",
		}
	}
	if strings.Contains(errLower, "neighborhood_id") {
		return ErrorInfo{
			Code:    GeoNeighborhoodNotFound,
			Message: "Cartierul selectat nu există",
		}
	}
	if strings.Contains(errLower, "category_id") {
		return ErrorInfo{
			Code:    CategoryNotFound,
			Message: "Categoria selectată nu există",
		}
	}
	if strings.Contains(errLower, "listing_id") || strings.Contains(errLower, "fk_listings") {
		return ErrorInfo{
			Code:    ListingNotFound,
			Message: "Anunțul nu există",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "Datele referite nu au fost găsite",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "listing") {
		return "Anunțul nu a fost găsit"
	}
	if strings.Contains(contextLower, "user") {
		return "Utilizatorul nu a fost găsit"
	}
	if strings.Contains(contextLower, "category") {
		return "Categoria nu a fost găsită"
	}
	if strings.Contains(contextLower, "county") {
		return "Județul nu a fost găsit"
	}
	if strings.Contains(contextLower, "city") {
		return "Orașul nu a fost găsit"
	}
	if strings.Contains(contextLower, "neighborhood") {
		return "Cartierul nu a fost găsit"
	}
	if strings.Contains(contextLower, "tag") {
		return "Eticheta nu a fost găsită"
	}
	if strings.Contains(contextLower, "payment") {
		return "Plata nu a fost găsită"
	}

	return "Datele solicitate nu au fost găsite"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") {
		return "A apărut o eroare la publicare. Încercați din nou"
	}
	if strings.Contains(contextLower, "update") {
		return "A apărut o eroare la actualizare. Încercați din nou"
	}
	if strings.Contains(contextLower, "delete") {
		return "A apărut o eroare la ștergere. Încercați din nou"
	}

	return "A apărut o eroare pe server. Încercați din nou"
}
