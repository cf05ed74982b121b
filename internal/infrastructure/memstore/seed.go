package memstore

import "github.com/jhoicas/stockview-api/internal/domain/entity"

// SeedWarehouses conjunto de referencia de bodegas del catálogo de ejemplo.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore - A", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune - C", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi - B", City: "Delhi", Country: "India"},
	}
}

// SeedProducts filas iniciales del catálogo de ejemplo (una por producto y bodega).
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1006", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1007", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1008", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1009", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1010", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1011", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1012", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1013", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1014", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1015", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1016", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1017", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1018", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1019", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1020", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
	}
}
