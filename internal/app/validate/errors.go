package validate

import "errors"

var ErrSchemaDocumentRequired = errors.New("schema document is required")
var ErrCompiledSchemaRequired = errors.New("compiled schema is required")
var ErrInstanceRequired = errors.New("instance document is required")
var ErrValidationFailed = errors.New("instance does not satisfy schema")
