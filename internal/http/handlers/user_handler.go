package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
	"shoply/internal/services"
	"shoply/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

type createUserRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

type updateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	PasswordOld     string `json:"password_old" validate:"required"`
	PasswordNew     string `json:"password_new" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=PasswordNew"`
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := h.Users.ListUsers(p)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *UserHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid user id")
	}
	u, err := h.Users.GetUser(id)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	u, err := h.Users.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	applog.Audit(c, "user.create", map[string]any{"user_id": u.ID, "email": u.Email})
	return c.JSON(u)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid user id")
	}
	var req updateUserRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	u, err := h.Users.UpdateUser(id, req.Name, req.Email)
	if err != nil {
		return err
	}
	applog.Audit(c, "user.update", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid user id")
	}
	var req changePasswordRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	if err := h.Users.ChangePassword(id, req.PasswordOld, req.PasswordNew); err != nil {
		applog.Security(c, "user.change_password.fail", map[string]any{"user_id": id})
		return err
	}
	applog.Audit(c, "user.change_password", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"id": id, "info": "PASSWORD CHANGED"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid user id")
	}
	if err := h.Users.DeleteUser(id); err != nil {
		return err
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"id": id, "info": "USER SUCCESSFULLY DELETED"})
}
