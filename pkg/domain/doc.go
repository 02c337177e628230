// Package domain contains the canonical shipment tracking entities shared by
// the classifier, the carrier normalizers and the orchestrator. The types are
// free of transport concerns so every carrier maps into the same shapes.
package domain
