package transforms

import (
	"reflect"
)

type TransformDefinition struct {
	Type  string                 `yaml:"type"`
	Match map[string]string      `yaml:"match"`
	Data  map[string]interface{} `yaml:"data"`
}

func (t *TransformDefinition) Transform(inputValue reflect.Value) {
	if !inputValue.IsValid() || inputValue.Kind() != reflect.Struct {
		return
	}

	if t.Type != "" && t.Type != inputValue.Type().Name() {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || field.Kind() != reflect.String || value != field.String() {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || !field.CanSet() {
			continue
		}

		newValue := reflect.ValueOf(value)
		if !newValue.IsValid() || newValue.Kind() != field.Kind() || !newValue.Type().ConvertibleTo(field.Type()) {
			continue
		}

		field.Set(newValue.Convert(field.Type()))
	}
}

// Transform applies every matching definition to a struct pointer or a slice of them
func Transform(input interface{}) {
	inputValueOf := reflect.ValueOf(input)

	if inputValueOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			transformValue(inputValueOf.Index(i))
		}
	} else {
		transformValue(inputValueOf)
	}
}

func transformValue(inputValueOf reflect.Value) {
	var inputValue reflect.Value
	switch inputValueOf.Kind() {
	case reflect.Pointer:
		inputValue = inputValueOf.Elem()
	case reflect.Struct:
		// Addressable only when reached through a slice
		if !inputValueOf.CanAddr() {
			return
		}
		inputValue = inputValueOf
	default:
		return
	}

	for _, transformDef := range transforms {
		transformDef.Transform(inputValue)
	}
}
