package commands

// Function adapters that let a single store-level factory serve every narrowed
// UoW interface.
//
// Example:
//
//	f := commands.FuncOrderUoWFactory(func() commands.OrderUoW {
//	    return gormFactory.Create()
//	})

type FuncOrderUoWFactory func() OrderUoW

func (f FuncOrderUoWFactory) Create() OrderUoW {
	return f()
}

type FuncProductUoWFactory func() ProductUoW

func (f FuncProductUoWFactory) Create() ProductUoW {
	return f()
}

type FuncCheckoutUoWFactory func() CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() CheckoutUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() FulfillmentUoW {
	return f()
}

type FuncAdminUoWFactory func() AdminUoW

func (f FuncAdminUoWFactory) Create() AdminUoW {
	return f()
}
