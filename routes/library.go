package routes

// Views rendered by the bookstore client.
const (
	LoginView    View = "LoginView"
	RegisterView View = "RegisterView"
	GuestView    View = "GuestView"
	UserView     View = "UserView"
	AdminView    View = "AdminView"
)

// LibraryEntries lists the bookstore client's routes:
//
//	/auth/login       auth > login       LoginView
//	/auth/register    auth > register    RegisterView
//	/library          library > guest    GuestView
//	/library/books    library > books    UserView
//	/library/profile  library > user     AdminView
func LibraryEntries() []Entry {
	return []Entry{
		{
			Path: "/auth",
			Name: "auth",
			Children: []Entry{
				{Path: "login", Name: "login", View: LoginView},
				{Path: "register", Name: "register", View: RegisterView},
			},
		},
		{
			Path: "/library",
			Name: "library",
			Children: []Entry{
				{Path: "", Name: "guest", View: GuestView},
				{Path: "books", Name: "books", View: UserView},
				{Path: "profile", Name: "user", View: AdminView},
			},
		},
	}
}

// Library constructs the bookstore client's *Table.
//
// Library panics if LibraryEntries stops passing validation.
func Library() *Table {
	t, err := NewTable(LibraryEntries()...)
	if err != nil {
		panic(err)
	}

	return t
}
