package dataset

// ColumnDef defines a single exported column with its SQL type, mirroring the
// row layout produced by the matching table builder below.
type ColumnDef struct {
	Name string
	Type string
}

// FKDef defines a foreign key reference carried into sink DDL.
type FKDef struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table is the row-oriented form handed to sinks: ordered columns plus rows
// of values aligned with them. Nullable values are nil.
type Table struct {
	Name        string
	Columns     []ColumnDef
	ForeignKeys []FKDef
	Rows        [][]any
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Tables converts every generated table to its exportable form, in the same
// dependency order the pipeline generates them. Empty tables keep their full
// column set so sinks always see the correct shape.
func (d *Dataset) Tables() []Table {
	return []Table{
		d.countriesTable(),
		d.houseRulesTable(),
		d.amenitiesTable(),
		d.citiesTable(),
		d.usersTable(),
		d.accommodationsTable(),
		d.photosTable(),
		d.accommodationHouseRulesTable(),
		d.accommodationAmenitiesTable(),
		d.bookingsTable(),
		d.paymentsTable(),
		d.cancellationsTable(),
		d.availabilityTable(),
		d.pricesTable(),
		d.socialNetworksTable(),
		d.profilesTable(),
		d.messagesTable(),
		d.reviewsTable(),
		d.hostResponsesTable(),
		d.commissionsTable(),
		d.adminsTable(),
		d.adminActionsTable(),
		d.transactionsTable(),
		d.notificationsTable(),
	}
}

// optional lifts a nullable field into a row value.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func (d *Dataset) countriesTable() Table {
	t := Table{
		Name: "countries",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "name", Type: "VARCHAR(100)"},
		},
	}
	for _, c := range d.Countries {
		t.Rows = append(t.Rows, []any{c.ID, c.Name})
	}
	return t
}

func (d *Dataset) houseRulesTable() Table {
	t := Table{
		Name: "house_rules",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "description", Type: "VARCHAR(255)"},
		},
	}
	for _, r := range d.HouseRules {
		t.Rows = append(t.Rows, []any{r.ID, r.Description})
	}
	return t
}

func (d *Dataset) amenitiesTable() Table {
	t := Table{
		Name: "amenities",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "name", Type: "VARCHAR(100)"},
		},
	}
	for _, a := range d.Amenities {
		t.Rows = append(t.Rows, []any{a.ID, a.Name})
	}
	return t
}

func (d *Dataset) citiesTable() Table {
	t := Table{
		Name: "cities",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "country_id", Type: "INTEGER"},
			{Name: "name", Type: "VARCHAR(100)"},
		},
		ForeignKeys: []FKDef{
			{Column: "country_id", RefTable: "countries", RefColumn: "id"},
		},
	}
	for _, c := range d.Cities {
		t.Rows = append(t.Rows, []any{c.ID, c.CountryID, c.Name})
	}
	return t
}

func (d *Dataset) usersTable() Table {
	t := Table{
		Name: "users",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "name", Type: "VARCHAR(200)"},
			{Name: "email", Type: "VARCHAR(255)"},
			{Name: "password", Type: "VARCHAR(255)"},
			{Name: "phone", Type: "VARCHAR(30)"},
			{Name: "user_type", Type: "VARCHAR(10)"},
			{Name: "date_of_birth", Type: "DATE"},
			{Name: "gender", Type: "VARCHAR(10)"},
			{Name: "address", Type: "VARCHAR(255)"},
			{Name: "registration_date", Type: "DATE"},
			{Name: "last_login", Type: "TIMESTAMP"},
			{Name: "user_status", Type: "VARCHAR(10)"},
		},
	}
	for _, u := range d.Users {
		t.Rows = append(t.Rows, []any{
			u.ID, u.Name, u.Email, u.Password, optional(u.Phone), u.Role,
			u.DateOfBirth, optional(u.Gender), u.Address, u.RegistrationDate,
			optional(u.LastLogin), u.Status,
		})
	}
	return t
}

func (d *Dataset) accommodationsTable() Table {
	t := Table{
		Name: "accommodations",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "host_id", Type: "INTEGER"},
			{Name: "title", Type: "VARCHAR(200)"},
			{Name: "description", Type: "TEXT"},
			{Name: "address", Type: "VARCHAR(255)"},
			{Name: "city_id", Type: "INTEGER"},
			{Name: "country_id", Type: "INTEGER"},
			{Name: "price_per_night", Type: "NUMERIC(10,2)"},
			{Name: "availability_status", Type: "VARCHAR(20)"},
			{Name: "property_type", Type: "VARCHAR(30)"},
			{Name: "num_bedrooms", Type: "INTEGER"},
			{Name: "num_bathrooms", Type: "INTEGER"},
			{Name: "square_footage", Type: "INTEGER"},
			{Name: "neighborhood", Type: "VARCHAR(100)"},
			{Name: "host_rating", Type: "NUMERIC(3,1)"},
			{Name: "accommodation_rating", Type: "NUMERIC(3,1)"},
			{Name: "registration_date", Type: "DATE"},
			{Name: "last_updated", Type: "TIMESTAMP"},
		},
		ForeignKeys: []FKDef{
			{Column: "host_id", RefTable: "users", RefColumn: "id"},
			{Column: "city_id", RefTable: "cities", RefColumn: "id"},
			{Column: "country_id", RefTable: "countries", RefColumn: "id"},
		},
	}
	for _, a := range d.Accommodations {
		t.Rows = append(t.Rows, []any{
			a.ID, a.HostID, a.Title, a.Description, a.Address, a.CityID,
			a.CountryID, a.PricePerNight, a.AvailabilityStatus, a.PropertyType,
			a.Bedrooms, a.Bathrooms, a.SquareFootage, optional(a.Neighborhood),
			a.HostRating, a.Rating, a.RegistrationDate, a.LastUpdated,
		})
	}
	return t
}

func (d *Dataset) photosTable() Table {
	t := Table{
		Name: "photos",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "photo_url", Type: "VARCHAR(500)"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
		},
	}
	for _, p := range d.Photos {
		t.Rows = append(t.Rows, []any{p.ID, p.AccommodationID, p.URL})
	}
	return t
}

func (d *Dataset) accommodationHouseRulesTable() Table {
	t := Table{
		Name: "accommodation_house_rules",
		Columns: []ColumnDef{
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "house_rule_id", Type: "INTEGER"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
			{Column: "house_rule_id", RefTable: "house_rules", RefColumn: "id"},
		},
	}
	for _, l := range d.AccommodationHouseRules {
		t.Rows = append(t.Rows, []any{l.AccommodationID, l.HouseRuleID})
	}
	return t
}

func (d *Dataset) accommodationAmenitiesTable() Table {
	t := Table{
		Name: "accommodation_amenities",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "amenity_id", Type: "INTEGER"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
			{Column: "amenity_id", RefTable: "amenities", RefColumn: "id"},
		},
	}
	for _, l := range d.AccommodationAmenities {
		t.Rows = append(t.Rows, []any{l.ID, l.AccommodationID, l.AmenityID})
	}
	return t
}

func (d *Dataset) bookingsTable() Table {
	t := Table{
		Name: "bookings",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "guest_id", Type: "INTEGER"},
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "check_in_date", Type: "DATE"},
			{Name: "check_out_date", Type: "DATE"},
			{Name: "total_amount", Type: "NUMERIC(10,2)"},
			{Name: "booking_status", Type: "VARCHAR(15)"},
			{Name: "discount_applied", Type: "NUMERIC(5,2)"},
			{Name: "payment_status", Type: "VARCHAR(10)"},
			{Name: "created_at", Type: "TIMESTAMP"},
			{Name: "updated_at", Type: "TIMESTAMP"},
		},
		ForeignKeys: []FKDef{
			{Column: "guest_id", RefTable: "users", RefColumn: "id"},
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
		},
	}
	for _, b := range d.Bookings {
		t.Rows = append(t.Rows, []any{
			b.ID, b.GuestID, b.AccommodationID, b.CheckIn, b.CheckOut,
			b.TotalAmount, b.Status, b.Discount, b.PaymentStatus,
			b.CreatedAt, b.UpdatedAt,
		})
	}
	return t
}

func (d *Dataset) paymentsTable() Table {
	t := Table{
		Name: "payments",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "booking_id", Type: "INTEGER"},
			{Name: "payment_date", Type: "DATE"},
			{Name: "amount", Type: "NUMERIC(10,2)"},
		},
		ForeignKeys: []FKDef{
			{Column: "booking_id", RefTable: "bookings", RefColumn: "id"},
		},
	}
	for _, p := range d.Payments {
		t.Rows = append(t.Rows, []any{p.ID, p.BookingID, p.Date, p.Amount})
	}
	return t
}

func (d *Dataset) cancellationsTable() Table {
	t := Table{
		Name: "cancellations",
		Columns: []ColumnDef{
			{Name: "booking_id", Type: "INTEGER"},
			{Name: "cancellation_date", Type: "DATE"},
			{Name: "cancellation_reason", Type: "VARCHAR(100)"},
		},
		ForeignKeys: []FKDef{
			{Column: "booking_id", RefTable: "bookings", RefColumn: "id"},
		},
	}
	for _, c := range d.Cancellations {
		t.Rows = append(t.Rows, []any{c.BookingID, c.Date, c.Reason})
	}
	return t
}

func (d *Dataset) availabilityTable() Table {
	t := Table{
		Name: "availability",
		Columns: []ColumnDef{
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "date", Type: "DATE"},
			{Name: "is_available", Type: "BOOLEAN"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
		},
	}
	for _, a := range d.Availability {
		t.Rows = append(t.Rows, []any{a.AccommodationID, a.Date, a.IsAvailable})
	}
	return t
}

func (d *Dataset) pricesTable() Table {
	t := Table{
		Name: "prices",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "amount", Type: "NUMERIC(10,2)"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
		},
	}
	for _, p := range d.Prices {
		t.Rows = append(t.Rows, []any{p.ID, p.AccommodationID, p.Amount})
	}
	return t
}

func (d *Dataset) socialNetworksTable() Table {
	t := Table{
		Name: "social_networks",
		Columns: []ColumnDef{
			{Name: "user_id", Type: "INTEGER"},
			{Name: "network_name", Type: "VARCHAR(30)"},
			{Name: "network_profile_url", Type: "VARCHAR(255)"},
		},
		ForeignKeys: []FKDef{
			{Column: "user_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, s := range d.SocialNetworks {
		t.Rows = append(t.Rows, []any{s.UserID, s.Network, s.ProfileURL})
	}
	return t
}

func (d *Dataset) profilesTable() Table {
	t := Table{
		Name: "profiles",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "user_id", Type: "INTEGER"},
			{Name: "bio", Type: "VARCHAR(255)"},
			{Name: "profile_picture", Type: "VARCHAR(255)"},
			{Name: "social_network_link", Type: "VARCHAR(255)"},
		},
		ForeignKeys: []FKDef{
			{Column: "user_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, p := range d.Profiles {
		t.Rows = append(t.Rows, []any{p.ID, p.UserID, p.Bio, p.PictureURL, p.SocialLink})
	}
	return t
}

func (d *Dataset) messagesTable() Table {
	t := Table{
		Name: "messages",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "sender_id", Type: "INTEGER"},
			{Name: "receiver_id", Type: "INTEGER"},
			{Name: "message_content", Type: "TEXT"},
			{Name: "message_date", Type: "DATE"},
		},
		ForeignKeys: []FKDef{
			{Column: "sender_id", RefTable: "users", RefColumn: "id"},
			{Column: "receiver_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, m := range d.Messages {
		t.Rows = append(t.Rows, []any{m.ID, m.SenderID, m.ReceiverID, m.Content, m.Date})
	}
	return t
}

func (d *Dataset) reviewsTable() Table {
	t := Table{
		Name: "reviews",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "accommodation_id", Type: "INTEGER"},
			{Name: "user_id", Type: "INTEGER"},
			{Name: "review_text", Type: "VARCHAR(255)"},
			{Name: "rating", Type: "SMALLINT"},
			{Name: "review_date", Type: "DATE"},
		},
		ForeignKeys: []FKDef{
			{Column: "accommodation_id", RefTable: "accommodations", RefColumn: "id"},
			{Column: "user_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, r := range d.Reviews {
		t.Rows = append(t.Rows, []any{r.ID, r.AccommodationID, r.UserID, r.Text, r.Rating, r.Date})
	}
	return t
}

func (d *Dataset) hostResponsesTable() Table {
	t := Table{
		Name: "host_responses",
		Columns: []ColumnDef{
			{Name: "review_id", Type: "INTEGER"},
			{Name: "response_text", Type: "TEXT"},
		},
		ForeignKeys: []FKDef{
			{Column: "review_id", RefTable: "reviews", RefColumn: "id"},
		},
	}
	for _, h := range d.HostResponses {
		t.Rows = append(t.Rows, []any{h.ReviewID, h.Text})
	}
	return t
}

func (d *Dataset) commissionsTable() Table {
	t := Table{
		Name: "commissions",
		Columns: []ColumnDef{
			{Name: "booking_id", Type: "INTEGER"},
			{Name: "amount", Type: "NUMERIC(10,2)"},
		},
		ForeignKeys: []FKDef{
			{Column: "booking_id", RefTable: "bookings", RefColumn: "id"},
		},
	}
	for _, c := range d.Commissions {
		t.Rows = append(t.Rows, []any{c.BookingID, c.Amount})
	}
	return t
}

func (d *Dataset) adminsTable() Table {
	t := Table{
		Name: "admins",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "user_id", Type: "INTEGER"},
			{Name: "role", Type: "VARCHAR(20)"},
		},
		ForeignKeys: []FKDef{
			{Column: "user_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, a := range d.Admins {
		t.Rows = append(t.Rows, []any{a.ID, a.UserID, a.Role})
	}
	return t
}

func (d *Dataset) adminActionsTable() Table {
	t := Table{
		Name: "admin_actions",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "admin_id", Type: "INTEGER"},
			{Name: "action_description", Type: "VARCHAR(100)"},
			{Name: "action_date", Type: "DATE"},
		},
		ForeignKeys: []FKDef{
			{Column: "admin_id", RefTable: "admins", RefColumn: "id"},
		},
	}
	for _, a := range d.AdminActions {
		t.Rows = append(t.Rows, []any{a.ID, a.AdminID, a.Description, a.Date})
	}
	return t
}

func (d *Dataset) transactionsTable() Table {
	t := Table{
		Name: "transactions",
		Columns: []ColumnDef{
			{Name: "id", Type: "SERIAL PRIMARY KEY"},
			{Name: "payment_id", Type: "INTEGER"},
			{Name: "transaction_date", Type: "DATE"},
			{Name: "transaction_type", Type: "VARCHAR(10)"},
			{Name: "amount", Type: "NUMERIC(10,2)"},
			{Name: "payment_method", Type: "VARCHAR(30)"},
			{Name: "reference", Type: "VARCHAR(40)"},
		},
		ForeignKeys: []FKDef{
			{Column: "payment_id", RefTable: "payments", RefColumn: "id"},
		},
	}
	for _, tx := range d.Transactions {
		t.Rows = append(t.Rows, []any{
			tx.ID, tx.PaymentID, tx.Date, tx.Type, tx.Amount, tx.Method, tx.Reference,
		})
	}
	return t
}

func (d *Dataset) notificationsTable() Table {
	t := Table{
		Name: "notifications",
		Columns: []ColumnDef{
			{Name: "user_id", Type: "INTEGER"},
			{Name: "notification_message", Type: "TEXT"},
			{Name: "notification_date", Type: "DATE"},
		},
		ForeignKeys: []FKDef{
			{Column: "user_id", RefTable: "users", RefColumn: "id"},
		},
	}
	for _, n := range d.Notifications {
		t.Rows = append(t.Rows, []any{n.UserID, n.Message, n.Date})
	}
	return t
}
