package impl

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// parseID converts a hex string to an ObjectID, mapping malformed
// input to a bad request error
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrBadRequest.WithMessage("invalid id format")
	}
	return oid, nil
}
