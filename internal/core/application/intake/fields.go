package intake

// Order-level fields.
var (
	OrderNumberField   = NewField("order_number", "order", "number", "order_number", "orderNumber", "numero", "nro_orden")
	ExternalCodeField  = NewField("external_code", "external_code", "externalCode", "code", "codigo", "codigo_externo")
	ScheduledDateField = NewField("scheduled_date", "scheduled_date", "scheduledDate", "date", "fecha", "fecha_programada")
	PresetField        = NewField("preset", "preset", "target", "quantity", "cantidad", "carga_programada")
)

// Sub-document fields.
var (
	DriverField  = NewField("driver", "driver", "chofer", "conductor")
	ClientField  = NewField("client", "client", "customer", "cliente")
	TruckField   = NewField("truck", "truck", "vehicle", "camion")
	ProductField = NewField("product", "product", "producto")
)

// Driver fields.
var (
	DriverDocumentField  = NewField("driver.document_number", "document_number", "documentNumber", "document", "documento", "dni")
	DriverFirstNameField = NewField("driver.first_name", "first_name", "firstName", "name", "nombre")
	DriverLastNameField  = NewField("driver.last_name", "last_name", "lastName", "surname", "apellido")
)

// Client fields.
var (
	ClientCompanyField = NewField("client.company_name", "company_name", "companyName", "company", "razon_social", "name")
	ClientContactField = NewField("client.contact_name", "contact_name", "contactName", "contact", "contacto")
	ClientEmailField   = NewField("client.email", "email", "mail", "correo")
)

// Truck fields.
var (
	TruckDomainField      = NewField("truck.domain", "domain", "plate", "license_plate", "dominio", "patente")
	TruckDescriptionField = NewField("truck.description", "description", "descripcion")
	TruckCapacityField    = NewField("truck.capacity", "capacity", "capacidad")
)

// Product fields.
var (
	ProductNameField        = NewField("product.name", "name", "product_name", "nombre")
	ProductDescriptionField = NewField("product.description", "description", "descripcion")
)
