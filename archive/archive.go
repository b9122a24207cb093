/*
Package archive implements destinations for exported symbol images.

DB stores images in a SQLite database, sharing the underlying data between
names whose images are identical. Dir writes each image as a file in a
directory. Both refuse to store the same name twice.
*/
package archive

import "errors"

// ErrExists is returned when storing a name that has already been stored.
var ErrExists = errors.New("archive: name already exists")
