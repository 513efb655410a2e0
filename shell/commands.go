package shell

import (
	"campus-hub/domain"
	"campus-hub/errors"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/samber/lo"
)

func usage(text string) error {
	return fmt.Errorf("%w, usage: %s", errors.ErrWrongArguments, text)
}

func (s *Shell) login(_ context.Context, args []string) error {
	if len(args) < 3 {
		return usage(s.commands["login"].usage)
	}
	s.println(color.Gray.Sprint("Signing in..."))
	identity, err := s.svc.Session.Login(args[0], args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	s.success("Welcome, %s!", identity.Name)
	return nil
}

func (s *Shell) logout(context.Context, []string) error {
	s.svc.Session.Logout()
	s.success("Signed out.")
	return nil
}

func (s *Shell) profile(_ context.Context, args []string) error {
	if len(args) > 0 {
		return s.editProfile(args[0], strings.Join(args[1:], " "))
	}
	identity, err := s.svc.Profile.Profile()
	if err != nil {
		return err
	}
	s.table([]string{"Name", "Student ID", "Email"}, [][]string{{identity.Name, identity.StudentID, identity.Email}})
	items, err := s.svc.Profile.ListedItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		s.println("You have not listed any items yet.")
		return nil
	}
	s.products(items)
	return nil
}

func (s *Shell) editProfile(action, value string) error {
	switch action {
	case "edit":
		if _, err := s.svc.Profile.Edit(); err != nil {
			return err
		}
	case "name":
		if err := s.svc.Profile.SetDisplayName(value); err != nil {
			return err
		}
	case "email":
		if err := s.svc.Profile.SetContactEmail(value); err != nil {
			return err
		}
	case "save":
		message, err := s.svc.Profile.SaveEdit()
		if err != nil {
			return err
		}
		s.success("%s", message)
		return nil
	case "cancel":
		s.svc.Profile.CancelEdit()
		s.println("Edit cancelled.")
		return nil
	default:
		return usage(s.commands["profile"].usage)
	}
	draft, _ := s.svc.Profile.EditDraft()
	s.table([]string{"Display name", "Contact email"}, [][]string{{draft.DisplayName, draft.ContactEmail}})
	return nil
}

func (s *Shell) courses(context.Context, []string) error {
	rows := lo.Map(s.svc.Chat.Courses(), func(c domain.Course, _ int) []string {
		return []string{string(c.ID), c.Code, c.Name}
	})
	s.table([]string{"ID", "Code", "Name"}, rows)
	return nil
}

func (s *Shell) open(ctx context.Context, args []string) error {
	var courseID domain.CourseID
	if len(args) > 0 {
		courseID = domain.CourseID(args[0])
	}
	course, ok := s.svc.Chat.Navigate(courseID)
	if !ok {
		if _, err := s.svc.Session.Require(); err != nil {
			return err
		}
		s.println("No course selected.")
		return nil
	}
	s.success("%s %s", course.Code, course.Name)
	return s.messages(ctx, nil)
}

func (s *Shell) say(_ context.Context, args []string) error {
	message, err := s.svc.Chat.ComposeAndSend(strings.Join(args, " "), nil)
	if err != nil {
		return err
	}
	if message != nil {
		s.printMessage(*message)
	}
	return nil
}

func (s *Shell) draft(_ context.Context, args []string) error {
	s.svc.Chat.SetDraft(strings.Join(args, " "))
	return nil
}

func (s *Shell) send(context.Context, []string) error {
	message, err := s.svc.Chat.SendDraft()
	if err != nil {
		return err
	}
	if message != nil {
		s.printMessage(*message)
	}
	return nil
}

func (s *Shell) attach(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage(s.commands["attach"].usage)
	}
	file, err := s.files(args[0])
	if err != nil {
		return err
	}
	message, err := s.svc.Chat.AttachFile(file)
	if err != nil {
		return err
	}
	s.printMessage(message)
	return nil
}

func (s *Shell) messages(context.Context, []string) error {
	messages, err := s.svc.Chat.Messages()
	if err != nil {
		return err
	}
	for _, m := range messages {
		s.printMessage(m)
	}
	return nil
}

func (s *Shell) printMessage(m domain.Message) {
	author := color.Cyan.Sprint(m.Sender.DisplayName())
	if m.SenderType == domain.SenderSelf {
		author = color.Green.Sprint("You")
	}
	line := fmt.Sprintf("[%s] %s: %s", m.CreatedAt.Format("15:04"), author, m.Text)
	if m.Attachment != nil {
		line += color.Gray.Sprintf(" (%s: %s)", m.Attachment.Kind, m.Attachment.Name)
	}
	s.println(line)
}

func (s *Shell) categories(context.Context, []string) error {
	s.println(strings.Join(s.svc.Marketplace.Categories(), ", "))
	return nil
}

// market takes an optional category first. Anything that is not a known
// category starts the search text.
func (s *Shell) market(ctx context.Context, args []string) error {
	category := ""
	if len(args) > 0 && lo.Contains(s.svc.Marketplace.Categories(), args[0]) {
		category, args = args[0], args[1:]
	}
	products, err := s.svc.Marketplace.Browse(ctx, strings.Join(args, " "), category)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.println("No items match your search.")
		return nil
	}
	s.products(products)
	return nil
}

func (s *Shell) products(products []domain.Product) {
	rows := lo.Map(products, func(p domain.Product, _ int) []string {
		return []string{string(p.ID), p.Name, "$" + p.Price.StringFixed(2), p.Category, p.Seller.Name, p.PostDate.Format("2006-01-02")}
	})
	s.table([]string{"ID", "Item", "Price", "Category", "Seller", "Posted"}, rows)
}

func (s *Shell) add(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage(s.commands["add"].usage)
	}
	_, err := s.svc.Cart.AddToCart(domain.ProductID(args[0]))
	return err
}

func (s *Shell) quantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage(s.commands["qty"].usage)
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return usage(s.commands["qty"].usage)
	}
	if _, err = s.svc.Cart.SetQuantity(domain.ProductID(args[0]), quantity); err != nil {
		return err
	}
	return s.cart(ctx, nil)
}

func (s *Shell) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage(s.commands["remove"].usage)
	}
	if _, err := s.svc.Cart.RemoveFromCart(domain.ProductID(args[0])); err != nil {
		return err
	}
	return s.cart(ctx, nil)
}

func (s *Shell) cart(context.Context, []string) error {
	lines, err := s.svc.Cart.Lines()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		s.println("Your cart is empty.")
		return nil
	}
	rows := lo.Map(lines, func(l domain.CartLine, _ int) []string {
		return []string{string(l.Product.ID), l.Product.Name, strconv.Itoa(l.Quantity), "$" + l.Subtotal().StringFixed(2)}
	})
	s.table([]string{"ID", "Item", "Qty", "Subtotal"}, rows)
	total, err := s.svc.Cart.Total()
	if err != nil {
		return err
	}
	s.println(color.Bold.Sprintf("Total: $%s", total.StringFixed(2)))
	return nil
}

func (s *Shell) pay(_ context.Context, args []string) error {
	method := domain.PaymentMethodUnset
	var details domain.PaymentDetails
	switch {
	case len(args) == 4 && args[0] == "card":
		method = domain.PaymentMethodCard
		details = domain.PaymentDetails{CardNumber: args[1], Expiry: args[2], CVV: args[3]}
	case len(args) == 2 && args[0] == "bkash":
		method = domain.PaymentMethodMobileWallet
		details = domain.PaymentDetails{WalletNumber: args[1]}
	case len(args) > 0:
		return usage(s.commands["pay"].usage)
	}
	receipt, err := s.svc.Cart.Checkout(method, details)
	if err != nil {
		return err
	}
	s.println(color.Gray.Sprintf("Order %s", receipt.OrderID))
	return nil
}

func (s *Shell) sell(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usage(s.commands["sell"].usage)
	}
	value := strings.Join(args[1:], " ")
	switch args[0] {
	case "name":
		s.svc.Listing.SetName(value)
	case "description":
		s.svc.Listing.SetDescription(value)
	case "price":
		s.svc.Listing.SetPrice(value)
	case "category":
		s.svc.Listing.SetCategory(value)
	case "image":
		file, err := s.files(value)
		if err != nil {
			return err
		}
		if preview := s.svc.Listing.SetImage(file); preview == "" {
			s.println(color.Yellow.Sprintf("%s has no preview, it is not an image.", file.Name))
		}
	case "form":
		draft := s.svc.Listing.Draft()
		image := ""
		if draft.Image != nil {
			image = draft.Image.Name
		}
		s.table([]string{"Name", "Description", "Price", "Category", "Image"},
			[][]string{{draft.Name, draft.Description, draft.Price, draft.Category, image}})
		s.println("Categories: " + strings.Join(s.svc.Listing.Categories(), ", "))
	case "submit":
		s.println(color.Gray.Sprint("Listing item..."))
		message, err := s.svc.Listing.Submit()
		if err != nil {
			return err
		}
		s.success("%s", message)
	default:
		return usage(s.commands["sell"].usage)
	}
	return nil
}
