package registry

import "errors"

var ErrNameRequired = errors.New("schema name is required")
var ErrInvalidName = errors.New("invalid schema name")
var ErrDocumentRequired = errors.New("schema document is required")
var ErrSchemaNotFound = errors.New("schema not found")
