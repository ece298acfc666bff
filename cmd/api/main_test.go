package main

import (
	"testing"

	"npc_garage/docs"
)

func TestSwaggerInfo(t *testing.T) {
	if docs.SwaggerInfo.BasePath != "/v1" || docs.SwaggerInfo.Title != "Garage Analytics API" {
		t.Fatalf("unexpected swagger info: %+v", docs.SwaggerInfo)
	}
}
