package model

import (
	"fmt"

	"dogfight_simulator/pkg/logger"
)

// ErrUnknownReference :
// Used to indicate that a loadout references a ship, weapon
// or shield name that is not registered in the catalog.
var ErrUnknownReference = fmt.Errorf("Unknown reference in catalog")

// unknownReference :
// Convenience wrapper to produce an unknown reference error
// that carries the kind and name of the missing element.
//
// The `kind` defines the kind of element looked up.
//
// The `name` defines the name that could not be resolved.
//
// Returns the built error.
func unknownReference(kind string, name string) error {
	return fmt.Errorf("%w: %s \"%s\"", ErrUnknownReference, kind, name)
}

// Catalog :
// Regroups all the normalized records known to the simulator
// and indexed by their name. Elements are kept in the order
// of their registration so that any iteration (typically the
// construction of the contestants of a batch) stays fully
// deterministic.
//
// Registering an element under a name that already exists
// replaces the previous record in place, which allows to
// refresh the catalog from newer descriptor dumps.
type Catalog struct {
	log logger.Logger

	ships   []Ship
	shipIDs map[string]int

	weapons   []Weapon
	weaponIDs map[string]int

	shields   []Shield
	shieldIDs map[string]int

	loadouts   []Loadout
	loadoutIDs map[string]int
}

// NewCatalog :
// Used to create an empty catalog.
//
// The `log` defines a way to notify information about the
// ingestion of descriptors.
//
// Returns the created catalog.
func NewCatalog(log logger.Logger) *Catalog {
	return &Catalog{
		log:        log,
		ships:      make([]Ship, 0),
		shipIDs:    make(map[string]int),
		weapons:    make([]Weapon, 0),
		weaponIDs:  make(map[string]int),
		shields:    make([]Shield, 0),
		shieldIDs:  make(map[string]int),
		loadouts:   make([]Loadout, 0),
		loadoutIDs: make(map[string]int),
	}
}

// trace :
// Used as a wrapper around the internal logger to group the
// messages produced by the catalog.
//
// The `level` defines the severity of the message.
//
// The `msg` defines the content of the log to display.
func (c *Catalog) trace(level logger.Severity, msg string) {
	if c.log != nil {
		c.log.Trace(level, "catalog", msg)
	}
}

// AddShip :
// Used to register the input normalized ship, replacing any
// existing record with the same name.
//
// The `s` defines the ship to register.
func (c *Catalog) AddShip(s Ship) {
	if id, ok := c.shipIDs[s.Name]; ok {
		c.trace(logger.Debug, fmt.Sprintf("Replacing ship \"%s\"", s.Name))
		c.ships[id] = s
		return
	}

	c.shipIDs[s.Name] = len(c.ships)
	c.ships = append(c.ships, s)
}

// AddWeapon :
// Similar to `AddShip` but registers a weapon.
//
// The `w` defines the weapon to register.
func (c *Catalog) AddWeapon(w Weapon) {
	if id, ok := c.weaponIDs[w.Name]; ok {
		c.trace(logger.Debug, fmt.Sprintf("Replacing weapon \"%s\"", w.Name))
		c.weapons[id] = w
		return
	}

	c.weaponIDs[w.Name] = len(c.weapons)
	c.weapons = append(c.weapons, w)
}

// AddShield :
// Similar to `AddShip` but registers a shield generator.
//
// The `s` defines the shield to register.
func (c *Catalog) AddShield(s Shield) {
	if id, ok := c.shieldIDs[s.Name]; ok {
		c.trace(logger.Debug, fmt.Sprintf("Replacing shield \"%s\"", s.Name))
		c.shields[id] = s
		return
	}

	c.shieldIDs[s.Name] = len(c.shields)
	c.shields = append(c.shields, s)
}

// AddLoadout :
// Similar to `AddShip` but registers a loadout, indexed by
// its identifier.
//
// The `l` defines the loadout to register.
func (c *Catalog) AddLoadout(l Loadout) {
	if id, ok := c.loadoutIDs[l.Identifier]; ok {
		c.trace(logger.Debug, fmt.Sprintf("Replacing loadout \"%s\"", l.Identifier))
		c.loadouts[id] = l
		return
	}

	c.loadoutIDs[l.Identifier] = len(c.loadouts)
	c.loadouts = append(c.loadouts, l)
}

// RegisterShipDescriptor :
// Used to normalize the input raw descriptor and register
// the resulting ship.
//
// The `source` defines the raw descriptor to ingest.
//
// Returns any error encountered while normalizing.
func (c *Catalog) RegisterShipDescriptor(source Descriptor) error {
	s, err := NewShipFromDescriptor(source)
	if err != nil {
		c.trace(logger.Error, fmt.Sprintf("Could not normalize ship descriptor (err: %v)", err))
		return err
	}

	c.AddShip(s)
	c.trace(logger.Verbose, fmt.Sprintf("Registered ship \"%s\"", s.Name))

	return nil
}

// RegisterWeaponDescriptor :
// Similar to `RegisterShipDescriptor` but ingests a weapon
// descriptor.
//
// The `source` defines the raw descriptor to ingest.
//
// Returns any error encountered while normalizing.
func (c *Catalog) RegisterWeaponDescriptor(source Descriptor) error {
	w, err := NewWeaponFromDescriptor(source)
	if err != nil {
		c.trace(logger.Error, fmt.Sprintf("Could not normalize weapon descriptor (err: %v)", err))
		return err
	}

	c.AddWeapon(w)
	c.trace(logger.Verbose, fmt.Sprintf("Registered weapon \"%s\"", w.Name))

	return nil
}

// RegisterShieldDescriptor :
// Similar to `RegisterShipDescriptor` but ingests a shield
// descriptor.
//
// The `source` defines the raw descriptor to ingest.
//
// Returns any error encountered while normalizing.
func (c *Catalog) RegisterShieldDescriptor(source Descriptor) error {
	s, err := NewShieldFromDescriptor(source)
	if err != nil {
		c.trace(logger.Error, fmt.Sprintf("Could not normalize shield descriptor (err: %v)", err))
		return err
	}

	c.AddShield(s)
	c.trace(logger.Verbose, fmt.Sprintf("Registered shield \"%s\"", s.Name))

	return nil
}

// RegisterLoadoutDescriptor :
// Similar to `RegisterShipDescriptor` but ingests a loadout
// descriptor.
//
// The `source` defines the raw descriptor to ingest.
//
// Returns any error encountered while normalizing.
func (c *Catalog) RegisterLoadoutDescriptor(source Descriptor) error {
	l, err := NewLoadoutFromDescriptor(source)
	if err != nil {
		c.trace(logger.Error, fmt.Sprintf("Could not normalize loadout descriptor (err: %v)", err))
		return err
	}

	c.AddLoadout(l)
	c.trace(logger.Verbose, fmt.Sprintf("Registered loadout \"%s\" (\"%s\")", l.Identifier, l.Name))

	return nil
}

// Ship :
// Used to fetch the ship registered under the input name.
//
// The `name` defines the name of the ship to fetch.
//
// Returns the ship along with any error in case the name is
// not registered.
func (c *Catalog) Ship(name string) (Ship, error) {
	id, ok := c.shipIDs[name]
	if !ok {
		return Ship{}, unknownReference("ship", name)
	}

	return c.ships[id], nil
}

// Weapon :
// Used to fetch the weapon registered under the input name.
//
// The `name` defines the name of the weapon to fetch.
//
// Returns the weapon along with any error in case the name
// is not registered.
func (c *Catalog) Weapon(name string) (Weapon, error) {
	id, ok := c.weaponIDs[name]
	if !ok {
		return Weapon{}, unknownReference("weapon", name)
	}

	return c.weapons[id], nil
}

// Shield :
// Used to fetch the shield registered under the input name.
//
// The `name` defines the name of the shield to fetch.
//
// Returns the shield along with any error in case the name
// is not registered.
func (c *Catalog) Shield(name string) (Shield, error) {
	id, ok := c.shieldIDs[name]
	if !ok {
		return Shield{}, unknownReference("shield", name)
	}

	return c.shields[id], nil
}

// Loadout :
// Used to fetch the loadout registered under the input
// identifier.
//
// The `identifier` defines the identifier of the loadout
// to fetch.
//
// Returns the loadout along with any error in case the
// identifier is not registered.
func (c *Catalog) Loadout(identifier string) (Loadout, error) {
	id, ok := c.loadoutIDs[identifier]
	if !ok {
		return Loadout{}, unknownReference("loadout", identifier)
	}

	return c.loadouts[id], nil
}

// Loadouts :
// Used to fetch all the registered loadouts in registration
// order.
//
// Returns the loadouts.
func (c *Catalog) Loadouts() []Loadout {
	out := make([]Loadout, len(c.loadouts))
	copy(out, c.loadouts)

	return out
}
