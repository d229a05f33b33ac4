package data

import (
	_ "embed"
)

//go:embed catalog/room_templates.json
var RoomTemplates []byte
