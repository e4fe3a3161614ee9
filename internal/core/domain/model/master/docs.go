// Package master holds the master entities an order refers to: Client, Driver, Truck
// and Product. This service only finds or creates them by natural key; their wider
// lifecycle belongs to other systems.
//
// Natural keys:
//   - Client: company name
//   - Driver: document number
//   - Truck: domain (licence plate), stored upper-cased without spaces
//   - Product: name
package master
