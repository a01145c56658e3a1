package entity

import "image"

// IconImage is a decoded condition icon scaled to its display size.
type IconImage struct {
	ID    string
	Image image.Image
}
