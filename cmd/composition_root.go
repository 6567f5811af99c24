package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryManuallyCommandHandler() commands.AssignDeliveryManuallyCommandHandler {
	return commands.NewAssignDeliveryManuallyCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	var f commands.PersonUoWFactory = FuncPersonUoWFactory(func() commands.PersonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.createZoneUoWFactory())
}

func (c *CompositionRoot) CreateUpdateZoneCommandHandler() commands.UpdateZoneCommandHandler {
	return commands.NewUpdateZoneCommandHandler(c.createZoneUoWFactory())
}

func (c *CompositionRoot) CreateAddZoneAssignmentCommandHandler() commands.AddZoneAssignmentCommandHandler {
	var f commands.ZonePersonUoWFactory = FuncZonePersonUoWFactory(func() commands.ZonePersonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddZoneAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateZoneAssignmentCommandHandler() commands.UpdateZoneAssignmentCommandHandler {
	return commands.NewUpdateZoneAssignmentCommandHandler(c.createZoneUoWFactory())
}

func (c *CompositionRoot) CreateRemoveZoneAssignmentCommandHandler() commands.RemoveZoneAssignmentCommandHandler {
	return commands.NewRemoveZoneAssignmentCommandHandler(c.createZoneUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryPersonStatsQueryHandler() queries.GetDeliveryPersonStatsQueryHandler {
	return queries.NewGetDeliveryPersonStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZoneStatisticsQueryHandler() queries.GetZoneStatisticsQueryHandler {
	return queries.NewGetZoneStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createZoneUoWFactory() commands.ZoneUoWFactory {
	return FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPersonUoWFactory func() commands.PersonUoW

func (f FuncPersonUoWFactory) Create() commands.PersonUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncZonePersonUoWFactory func() commands.ZonePersonUoW

func (f FuncZonePersonUoWFactory) Create() commands.ZonePersonUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
