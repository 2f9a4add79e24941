package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp es la fecha de alta de un registro crudo. En la colección local
// puede estar guardada como texto o como fecha BSON; ambas se leen como texto RFC 3339.
type Timestamp string

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.String:
		*t = Timestamp(rv.StringValue())
	case bsontype.DateTime:
		*t = Timestamp(time.UnixMilli(rv.DateTime()).UTC().Format(time.RFC3339))
	case bsontype.Null, bsontype.Undefined:
		*t = ""
	default:
		return fmt.Errorf("cannot decode %s into a timestamp", bt)
	}
	return nil
}
