// Package terminal implements the Manual T register selection: per-room
// airflow and floor area into register count, throw distance and face
// velocity. Simplified residential heuristics, not a full ADPI lookup.
package terminal

import (
	"fmt"
	"math"
)

// Options tune the assumed register hardware. Zero fields take the defaults
// for a common 4x10 residential diffuser.
type Options struct {
	// RegisterCapacityCFM is the airflow ceiling per register, default 180.
	RegisterCapacityCFM float64 `json:"register_capacity_cfm,omitempty"`
	// FreeAreaSqFt is the register Ak factor, default 0.28.
	FreeAreaSqFt float64 `json:"free_area_sqft,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.RegisterCapacityCFM <= 0 {
		o.RegisterCapacityCFM = 180
	}
	if o.FreeAreaSqFt <= 0 {
		o.FreeAreaSqFt = 0.28
	}
	return o
}

type Room struct {
	Name     string  `json:"name"`
	CFM      float64 `json:"cfm"`
	AreaSqFt float64 `json:"area_sqft"`
}

type Selection struct {
	RoomName       string  `json:"room_name"`
	RequiredCFM    float64 `json:"required_cfm"`
	Registers      int     `json:"registers"`
	CFMPerRegister float64 `json:"cfm_per_register"`
	ThrowFt        float64 `json:"estimated_throw_ft"`
	VelocityFPM    float64 `json:"velocity_fpm"`
}

// Select sizes the registers for one room. Throw targets 75% of the room's
// characteristic dimension, approximated as the square root of floor area.
func Select(room Room, opt Options) (Selection, error) {
	if math.IsNaN(room.CFM) || math.IsInf(room.CFM, 0) || room.CFM < 0 {
		return Selection{}, fmt.Errorf("room %s: cfm must be a non-negative finite number", room.Name)
	}
	if math.IsNaN(room.AreaSqFt) || math.IsInf(room.AreaSqFt, 0) || room.AreaSqFt < 0 {
		return Selection{}, fmt.Errorf("room %s: area must be a non-negative finite number", room.Name)
	}
	opt = opt.withDefaults()

	registers := int(math.Ceil(room.CFM / opt.RegisterCapacityCFM))
	if registers < 1 {
		registers = 1
	}
	perRegister := room.CFM / float64(registers)

	return Selection{
		RoomName:       room.Name,
		RequiredCFM:    room.CFM,
		Registers:      registers,
		CFMPerRegister: perRegister,
		ThrowFt:        math.Round(math.Sqrt(room.AreaSqFt) * 0.75),
		VelocityFPM:    perRegister / opt.FreeAreaSqFt,
	}, nil
}

// SelectRooms sizes registers for a room list, one selection per room in
// input order.
func SelectRooms(rooms []Room, opt Options) ([]Selection, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("rooms required")
	}
	out := make([]Selection, 0, len(rooms))
	for _, room := range rooms {
		sel, err := Select(room, opt)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}
