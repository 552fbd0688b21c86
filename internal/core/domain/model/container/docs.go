// Package container models shipping containers.
//
// The package includes:
//   - Container: a dry freight container with an owner code, a generated
//     ISO 6346 code, a length in feet and an ordered list of cargo items
//   - Refrigerated: a Container with a validated temperature held in Celsius
//     and exposed in Fahrenheit; insulation takes a fixed share of its volume
//   - HeatedRefrigerated: a Refrigerated container that can also heat, which
//     adds a lower temperature bound
//   - TemperaturePolicy: the ordered chain of bound checks applied to every
//     temperature write
//   - Factory: the only way to create containers; it draws serials from an
//     injected allocator and formats codes through an injected formatter
//
// Volume is a template method: Container.Volume is the stable public call and
// delegates the computation to the container's body, which the refrigerated
// variants decorate with their insulation overhead.
//
// Key business rules:
//   - Codes are assigned once at construction and never change
//   - Length must be a positive, finite number of feet
//   - Refrigerated temperature never exceeds 4 °C
//   - Heated refrigerated temperature stays within [-20, 4] °C
//   - A failed mutation leaves the previous state untouched
package container
