package handlers

import (
	"github.com/gorilla/schema"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePositionDTO(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type CheatDTO struct {
	Password string `schema:"password"`
}

func ParseCheatDTO(src map[string][]string) (CheatDTO, error) {
	var dto CheatDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}
